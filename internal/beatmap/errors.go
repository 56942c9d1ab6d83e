package beatmap

import "fmt"

// FormatError is returned when a file is structurally unparseable: the
// format-version header is missing or a mandatory line cannot be split
// into its minimum field count.
type FormatError struct {
	Path   string
	Reason string
	Line   int
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent decoding but mean a field
// fell back to its documented default or geometry was degraded. Examples:
//   - A non-numeric value where a number is expected
//   - An uninherited timing point with a non-positive beat length
//   - A perfect-circle slider with collinear control points
//
// Warnings are collected in Beatmap.Warnings during decoding.
type Warning struct {
	// Stage (section) where the warning occurred: "header", "general",
	// "editor", "metadata", "difficulty", "events", "timing", "colours"
	// or "hitobjects".
	Stage string

	// Warning message
	Message string

	// Line number where the issue occurred (0 if not applicable)
	Line int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Stage, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
