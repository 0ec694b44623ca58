// Package catalog holds the record model and the pure functions the table is
// derived from.
//
// # Overview
//
// A catalog is a fixed list of downloadable data files, one Record per map tile
// (quadkey). It is loaded once at startup, either from the embedded
// dataset.csv or from a user supplied file with the same header, and is never
// modified afterwards.
//
// # Derivation
//
// Every table render is computed from scratch:
//
//	records ──> Filter(query) ──> Sort(state) ──> rows
//
// Filter matches the quadkey as a case-sensitive substring or the region as a
// case-insensitive one. Sort is stable and never touches its input. Size labels
// like "12.7MB" are compared through ParseSize; every other column compares as
// plain text, so update dates order lexically.
//
// # Sort cycle
//
// SortState.Request implements the column header behaviour:
//
//	same column:      asc → desc → none → asc
//	different column: asc
package catalog
