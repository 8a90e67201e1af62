// Package detect partitions a sheet into table regions.
//
// Two detectors are provided:
//
//   - [KeyValue] scans columns A and B row by row and emits label/value(/unit)
//     blocks, named after the title row that precedes them.
//   - [Generic] groups populated rows into bands separated by blank rows and
//     infers each band's column span from the data.
//
// [LocateHeader] and [HeaderOffset] decide which row of a region names its
// columns; both use the text-over-number test in [HeaderPasses]. Every function here is a pure read of the grid it is given and is
// safe to call concurrently on the same grid.
package detect
