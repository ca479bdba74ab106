package record

import (
	"errors"
	"fmt"

	"recordkit/internal/diagnostic"
)

var (
	ErrNoFields    = errors.New("record must declare at least one field")
	ErrNoSuchField = errors.New("no such field")
	ErrNotIterable = errors.New("record type does not provide iteration")
	ErrNotHashable = errors.New("record type does not provide hashing")
)

// ConfigError reports an invalid record declaration. It is detected at
// synthesis time and the declaration is rejected as a whole; no partially
// synthesized type is ever returned.
type ConfigError struct {
	Record string
	Diags  diagnostic.Diagnostics
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("record %s: invalid declaration: %s", e.Record, e.Diags.Join())
}

// ImmutabilityError reports a write or delete attempted on a sealed frozen
// instance. The instance is left intact; the caller may recover.
type ImmutabilityError struct {
	Record string
	Field  string
	Op     string // "set" or "delete"
}

func (e *ImmutabilityError) Error() string {
	return fmt.Sprintf("%s is frozen: cannot %s field %s", e.Record, e.Op, e.Field)
}
