package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDealNotFound      = errors.New("deal not found")
	ErrDuplicateDeal     = errors.New("duplicate deal")
	ErrBatchNotFound     = errors.New("batch not found")
	ErrInvalidCSVFormat  = errors.New("invalid CSV format")
	ErrInvalidPageParams = errors.New("invalid page parameters")
)

// MalformedRowError marks a structurally corrupt row: wrong field count or an
// unparseable timestamp/amount. It aborts the whole batch, unlike a semantic
// validation failure which only skips the row.
type MalformedRowError struct {
	Line int
	Raw  string
	Err  error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d: %v", e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}
