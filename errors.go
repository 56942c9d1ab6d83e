package osuparser

import (
	"github.com/Vergenter/osuparser/internal/beatmap"
)

// FormatError is an alias to beatmap.FormatError.
// Re-exporting from internal/beatmap to keep the public API flat.
type FormatError = beatmap.FormatError

// Warning is an alias to beatmap.Warning.
// Re-exporting from internal/beatmap to keep the public API flat.
type Warning = beatmap.Warning
