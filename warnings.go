package reflow

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while reconstructing a
// document. Reconstruction succeeded, but the result may be imperfect.
type Warning struct {
	// Page is the 1-indexed page the warning applies to, or 0 for
	// document-level warnings.
	Page int

	// Message describes the issue
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string,
// one warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
