package ingest

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError reports an upload the parser cannot handle at
// all. It is fatal to the run: no pipeline stage should see partial
// data from an unparseable source.
type UnsupportedFormatError struct {
	Filename string
	Reason   string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported upload format for %q: %s", e.Filename, e.Reason)
}

// SchemaError reports a secondary table missing required join columns.
// It is recoverable: callers warn and ignore the source instead of
// failing the run.
type SchemaError struct {
	Filename string
	Missing  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("file %q is missing required columns: %s",
		e.Filename, strings.Join(e.Missing, ", "))
}
