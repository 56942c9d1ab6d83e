// Package decoder turns .osu text into a beatmap.Beatmap.
//
// Decoding is one forward pass: a line reader strips comments and blank
// lines, a small state machine tracks the current section, and a static
// dispatch table routes each data line to its section parser. Field-level
// problems degrade to warnings on the beatmap; only a missing format
// header or a mandatory line with too few fields aborts the decode.
package decoder

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Vergenter/osuparser/internal/beatmap"
)

// Format versions below this shift every time value by the legacy offset.
const (
	earlyVersionCutoff = 5
	earlyVersionOffset = 24
)

// The format version line, recognized only as the very first non-empty
// line of the file.
var formatHeaderRx = regexp.MustCompile(`^osu file format v(\d+)$`)

type decoder struct {
	path   string
	bm     *beatmap.Beatmap
	offset int // early-version timing offset, 0 for modern files
	seenAR bool
}

// sectionParsers is the static dispatch table from section name to
// parsing function. Lines in unlisted sections are skipped.
var sectionParsers = map[string]func(*decoder, string, int) error{
	"General":      (*decoder).parseGeneral,
	"Editor":       (*decoder).parseEditor,
	"Metadata":     (*decoder).parseMetadata,
	"Difficulty":   (*decoder).parseDifficulty,
	"Events":       (*decoder).parseEvents,
	"TimingPoints": (*decoder).parseTimingPoint,
	"Colours":      (*decoder).parseColour,
	"HitObjects":   (*decoder).parseHitObject,
}

// Decode parses a complete .osu buffer into a Beatmap. path is used only
// in error and warning messages.
//
// The returned error is a *beatmap.FormatError for structural failures;
// recoverable problems are accumulated in Beatmap.Warnings instead.
func Decode(data []byte, path string) (*beatmap.Beatmap, error) {
	r, err := newLineReader(data)
	if err != nil {
		return nil, err
	}

	line, n, ok := r.next()
	if !ok {
		return nil, &beatmap.FormatError{Path: path, Line: 1, Reason: "missing \"osu file format\" header"}
	}
	m := formatHeaderRx.FindStringSubmatch(line)
	if m == nil {
		return nil, &beatmap.FormatError{Path: path, Line: n, Reason: fmt.Sprintf("invalid header %q", line)}
	}
	version, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, &beatmap.FormatError{Path: path, Line: n, Reason: fmt.Sprintf("invalid format version in header %q", line)}
	}

	d := &decoder{path: path, bm: beatmap.New()}
	d.bm.FormatVersion = version
	if version < earlyVersionCutoff {
		d.offset = earlyVersionOffset
	}

	section := ""
	for {
		line, n, ok := r.next()
		if !ok {
			break
		}
		if m := sectionHeaderRx.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}
		parse := sectionParsers[section]
		if parse == nil {
			// Data before any section header, or an unknown section.
			continue
		}
		if err := parse(d, line, n); err != nil {
			return nil, err
		}
	}
	if err := r.err(); err != nil {
		return nil, fmt.Errorf("%s: read: %w", path, err)
	}

	d.clampDifficulty()
	return d.bm, nil
}

// fatalf builds the terminal error for a structurally broken line.
func (d *decoder) fatalf(line int, format string, args ...any) error {
	return &beatmap.FormatError{Path: d.path, Line: line, Reason: fmt.Sprintf(format, args...)}
}

// warnf records a recoverable problem; the affected field keeps its
// default.
func (d *decoder) warnf(stage string, line int, format string, args ...any) {
	d.bm.Warnings = append(d.bm.Warnings, beatmap.Warning{
		Stage:   stage,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// clampDifficulty applies the reference value ranges after the whole file
// is read; the circle-size range depends on the game mode.
func (d *decoder) clampDifficulty() {
	diff := &d.bm.Difficulty
	diff.HPDrainRate = clamp(diff.HPDrainRate, 0, 10)
	diff.OverallDifficulty = clamp(diff.OverallDifficulty, 0, 10)
	diff.ApproachRate = clamp(diff.ApproachRate, 0, 10)
	if d.bm.General.Mode == beatmap.ModeMania {
		diff.CircleSize = clamp(diff.CircleSize, 1, maniaMaxKeyCount)
	} else {
		diff.CircleSize = clamp(diff.CircleSize, 0, 10)
	}
}

const maniaMaxKeyCount = 18
