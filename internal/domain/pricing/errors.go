package pricing

import "fmt"

// DimensionError reports a missing or unusable dimension for a layout.
type DimensionError struct {
	Field  string
	Layout string
	Reason string
}

func (e *DimensionError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("invalid dimension %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid dimension %s for %s layout: %s", e.Field, e.Layout, e.Reason)
}

// UnknownKeyError means a composite key has no table entry. Validation and the
// tables are kept in sync, so reaching it is a configuration defect.
type UnknownKeyError struct {
	Table  string
	Key    string
	Reason string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: %s table has no entry for %q", e.Reason, e.Table, e.Key)
}
