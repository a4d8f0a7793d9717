package tracker

import "errors"

var (
	// ErrInvalidImport indicates the import payload is not a JSON document.
	// The live document is left untouched.
	ErrInvalidImport = errors.New("invalid import file")
	// ErrInvalidItemKind indicates an item-collection name outside task/feature/bug.
	ErrInvalidItemKind = errors.New("invalid project item kind")
	// ErrInvalidTimeframe indicates a goal bucket outside the known set.
	ErrInvalidTimeframe = errors.New("invalid goal timeframe")
	// ErrPeriodRequired indicates a monthly/quarterly/yearly goal update without
	// a period key.
	ErrPeriodRequired = errors.New("goal period required for this timeframe")
)
