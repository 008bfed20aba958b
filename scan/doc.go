// Package scan searches a directory tree of region files for columns whose
// biome or block name equals a target.
//
// # Flow
//
// A Scanner walks Root with filepath.WalkDir (lexical order) and picks the
// regular files whose extension equals Ext, ignoring case.  Each file is
// opened as a Container and its 32x32 cells are visited with x in the outer
// loop and z in the inner loop.  Every present cell is read, decoded into an
// ir tree and walked with column.Columns; each column is classified with
// match.Match.
//
// # Failure policy
//
// Absent cells, columns without the searched field and columns that do not
// match are skipped.  Everything else stops the whole scan at once:
//
//   - a region that cannot be opened
//   - a cell that cannot be read or decoded
//   - a chunk root or column that is not a compound
//   - a searched field of the wrong type
//
// The cause is returned from Run as an *AbortError naming the file, cell
// and column, and reported through Reporter.Aborted.  Open containers are
// closed on every path.
//
// # Output
//
// Findings are pushed to the Reporter as they are found; the Scanner keeps
// only counters (Summary).  TextReporter renders the classic line format:
//
//	region/r.0.0.mca
//	Found minecraft:plains at (X,Z) 0,0
//	Finished searching folder (1 files, 1 findings)
package scan
