package decoder

import (
	"math"
	"strconv"
	"strings"
)

// splitKeyVal splits a key-value line on the first ':' only; values may
// themselves contain ':'. Both sides are trimmed.
func splitKeyVal(line string) (key, val string) {
	i := strings.Index(line, ":")
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}

// splitCSV splits a comma-delimited line, keeping commas inside double
// quotes (quoted filenames in [Events]).
func splitCSV(line string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if inQuotes {
				cur.WriteByte(c)
			} else {
				out = append(out, strings.TrimSpace(cur.String()))
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	out = append(out, strings.TrimSpace(cur.String()))
	return out
}

// cleanFilename strips surrounding quotes and normalizes path separators.
func cleanFilename(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "\"")
	return strings.ReplaceAll(s, "\\", "/")
}

// intField coerces a numeric field. An empty value is an absent optional
// field and takes the default silently; a value that is not a number
// (decimal values round, old files carry them) records a warning and
// takes the default.
func (d *decoder) intField(stage string, line int, name, raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) {
		return int(math.Round(f))
	}
	d.warnf(stage, line, "%s: %q is not a number, using %v", name, raw, def)
	return def
}

func (d *decoder) floatField(stage string, line int, name, raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) {
		return v
	}
	d.warnf(stage, line, "%s: %q is not a number, using %v", name, raw, def)
	return def
}

// timeField coerces a time value and applies the early-version offset.
// def is in output terms, with the offset already applied.
func (d *decoder) timeField(stage string, line int, name, raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	return d.intField(stage, line, name, raw, def-d.offset) + d.offset
}

// atoiDefault is the warning-free coercion used inside sample
// descriptors, whose sub-fields are not tracked individually.
func atoiDefault(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// boolField follows the format's 0/1 convention: "1" is true, anything
// else false.
func boolField(raw string) bool {
	return strings.TrimSpace(raw) == "1"
}

// field returns parts[i] or "" when the optional tail is shorter.
func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
