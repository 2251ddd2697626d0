package solver

// Test bridge: exposes unexported kernels to package solver_test.

// IntegerBound exposes integerBound.
var IntegerBound = integerBound

// WithinCellLimit exposes withinCellLimit.
var WithinCellLimit = withinCellLimit

// TableCells exposes tableCells.
var TableCells = tableCells
