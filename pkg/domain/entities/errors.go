package entities

import "errors"

// ErrCorruptRecord marks an inventory record whose date_of_stock cannot be
// parsed. Age computation over such a record is a data-integrity fault, not a
// zero-age item.
var ErrCorruptRecord = errors.New("corrupt inventory record")
