package osuparser

// Version is the semantic version of the osuparser library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// LatestFormatVersion is the newest .osu format version the decoder is
// written against.
const LatestFormatVersion = 14
