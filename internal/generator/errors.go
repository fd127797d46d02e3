package generator

import (
	"fmt"
	"strings"
)

// FileError reports the input file whose processing failed.
type FileError struct {
	Path string
	Err  error
}

// Error prefixes the cause with the path unless the cause already names it,
// as os and naming errors do.
func (e *FileError) Error() string {
	msg := e.Err.Error()
	if strings.Contains(msg, e.Path) {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Path, msg)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
