package repository

import "errors"

// Sentinel kinds for table storage errors.
var (
	ErrTableNotFound = errors.New("table not found")
	ErrReadTable     = errors.New("read table failed")
	ErrWriteTable    = errors.New("write table failed")
	ErrDecode        = errors.New("decode record failed")
)
