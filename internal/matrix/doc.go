// Package matrix turns the rows of a vehicle "数据底表" sheet into UVA matrix entries.
//
// Sheets are selected by a name predicate (Discover), rows are mapped through a
// declarative column Layout, and the sparse L1 columns are forward-filled by
// folding a Carry over the rows (Step). Nothing in this package touches files.
package matrix
