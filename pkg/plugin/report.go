package plugin

import (
	"fmt"
	"strings"
)

// Report is the ordered list of human-readable lines an operation produced.
// Lines are only ever appended.
type Report []string

// Addf appends a formatted line.
func (r *Report) Addf(format string, args ...interface{}) {
	*r = append(*r, fmt.Sprintf(format, args...))
}

// Add appends a line for err.
func (r *Report) Add(err error) {
	*r = append(*r, err.Error())
}

// Append appends all lines of other.
func (r *Report) Append(other Report) {
	*r = append(*r, other...)
}

// Last returns the last line, or "" for an empty report.
func (r Report) Last() string {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1]
}

// String joins the lines with newlines.
func (r Report) String() string {
	return strings.Join(r, "\n")
}
