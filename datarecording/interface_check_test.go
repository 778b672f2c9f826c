package datarecording

// This file verifies that the SQLite implementations satisfy the package
// interfaces. If this compiles, the interfaces are correctly implemented.

var _ DataRecorder = (*SQLiteWriter)(nil)
var _ DataReader = (*SQLiteReader)(nil)
