// SPDX-License-Identifier: MIT

package clustering

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/repperiods/distance"
	"github.com/katalvlaran/repperiods/hull"
	"github.com/katalvlaran/repperiods/projection"
	"github.com/katalvlaran/repperiods/table"
)

// Option configures FindRepresentativePeriods.
type Option func(*Options)

// Options holds the effective selection configuration.
type Options struct {
	// Method picks the selection strategy. Default ConvexHull.
	Method Method

	// Metric is used by hull search, nearest-representative assignment and
	// the Clusterer. Default distance.SqEuclidean.
	Metric distance.Metric

	// DropIncompleteLastPeriod discards a short last period and spreads its
	// mass over the complete periods instead of keeping it as its own RP.
	DropIncompleteLastPeriod bool

	// InitialRepresentatives are periods that must be part of the result.
	InitialRepresentatives *table.Table

	// Clusterer backs KMeans and KMedoids.
	Clusterer Clusterer

	// CacheShortcut enables the hull distance-cache shortcut. It only takes
	// effect for metrics flagged HullCacheSafe.
	CacheShortcut bool

	// HullDescent configures the point-to-hull projection of hull methods.
	HullDescent projection.Config

	// Logger receives warn and debug diagnostics.
	Logger zerolog.Logger
}

// DefaultOptions returns ConvexHull with SqEuclidean, incomplete periods
// kept, the cache shortcut on (metric permitting) and a silent logger.
func DefaultOptions() Options {
	return Options{
		Method:        ConvexHull,
		Metric:        distance.SqEuclidean,
		CacheShortcut: true,
		HullDescent:   hull.DefaultOptions().Descent,
		Logger:        zerolog.Nop(),
	}
}

// WithMethod sets the selection method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithMetric sets the distance metric.
func WithMetric(m distance.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithDropIncompleteLastPeriod toggles dropping a short last period.
func WithDropIncompleteLastPeriod(on bool) Option {
	return func(o *Options) { o.DropIncompleteLastPeriod = on }
}

// WithInitialRepresentatives forces the periods of t into the result.
func WithInitialRepresentatives(t *table.Table) Option {
	return func(o *Options) { o.InitialRepresentatives = t }
}

// WithClusterer sets the k-means / k-medoids backend.
func WithClusterer(c Clusterer) Option {
	return func(o *Options) { o.Clusterer = c }
}

// WithCacheShortcut toggles the hull distance-cache shortcut.
func WithCacheShortcut(on bool) Option {
	return func(o *Options) { o.CacheShortcut = on }
}

// WithHullDescent replaces the point-to-hull descent parameters.
func WithHullDescent(cfg projection.Config) Option {
	return func(o *Options) { o.HullDescent = cfg }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}
	if o.Metric.Func == nil {
		o.Metric = distance.SqEuclidean
	}

	return o
}

// hullOptions translates the selection options for hull.Search.
func (o Options) hullOptions(seed []int) []hull.Option {
	return []hull.Option{
		hull.WithSeed(seed),
		hull.WithCacheShortcut(o.CacheShortcut && o.Metric.HullCacheSafe),
		hull.WithDescent(o.HullDescent),
		hull.WithLogger(o.Logger),
	}
}
