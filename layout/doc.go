// Package layout persists a warehouse floor as a flat list of records and
// applies such a list back onto a gridgraph.Grid.
//
// A record is a (tag, column, row) triple:
//
//	wall,3,4     obstacle cell
//	target,7,1   pick point
//	spawn,0,0    depot
//
// Apply resets the grid and then applies walls, the spawn and targets, each
// group in record order. A repeated target on the same cell toggles it off
// again. Bad records are skipped and reported as *RecordError values joined
// into one error; every well-formed record is still applied.
//
// Snapshot is the inverse: walls in row-major order, targets in insertion
// order and the spawn ((0,0) when the grid has no depot).
//
// Two codecs are provided: the plain CSV rows used by existing layout files
// (ReadCSV, WriteCSV) and YAML (ReadYAML, WriteYAML).
package layout
