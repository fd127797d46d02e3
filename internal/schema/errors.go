package schema

import (
	"fmt"
	"strings"
)

// UnknownReferenceError is returned when a reference marker names a definition
// that is not in the definitions table.
type UnknownReferenceError struct {
	// Ref is the reference as written, e.g. "#/$defs/Condition".
	Ref string
	// Name is the definition name the reference resolved to.
	Name string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown reference %q: no definition named %q", e.Ref, e.Name)
}

// CyclicReferenceError is returned when a definition references itself,
// directly or through other definitions. Such a schema cannot be fully inlined.
type CyclicReferenceError struct {
	Chain []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic reference: %s", strings.Join(e.Chain, " -> "))
}
