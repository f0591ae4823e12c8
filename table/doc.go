// Package table holds the in-memory long-format observation table consumed
// by representative-period selection, and the two operations the selection
// core needs from it: schema validation and pivoting into a dense matrix.
//
// A table has one row per (period, timestep, key…) with a numeric value.
// Column names for period, timestep and value are configurable through
// Layout; every other column is an extra key column whose string values are
// stored, in header order, in Row.Keys.
//
// Pivot turns the table into a features×periods matrix: one row per distinct
// key tuple (timestep plus extra keys), one column per period. Key tuples
// with a missing cell are dropped and reported back to the caller.
package table
