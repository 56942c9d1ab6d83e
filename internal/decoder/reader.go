package decoder

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Section headers look like "[General]".
var sectionHeaderRx = regexp.MustCompile(`^\[(\w+)\]$`)

const (
	initialBufSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// lineReader yields the logical lines of a beatmap: one forward pass,
// blank lines and // comments skipped, surrounding whitespace trimmed.
// Input with a UTF-16 byte-order mark is transcoded to UTF-8 first; a
// UTF-8 BOM is stripped. Line numbers refer to the raw input.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(data []byte) (*lineReader, error) {
	// BOMOverride switches to UTF-16 when the input starts with a
	// UTF-16 BOM and strips a plain UTF-8 BOM; old editors wrote both.
	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("transcode input: %w", err)
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, initialBufSize), maxLineSize)
	return &lineReader{sc: sc}, nil
}

// next returns the next logical line and its number. ok is false once the
// input is exhausted.
func (r *lineReader) next() (line string, n int, ok bool) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		return text, r.line, true
	}
	return "", r.line, false
}

// err surfaces scanner failures (a single line over maxLineSize).
func (r *lineReader) err() error {
	return r.sc.Err()
}
