package osuparser

// Option configures behavior when decoding beatmaps.
//
// Options use the functional options pattern:
//
//	bm, err := osuparser.Parse(data,
//	    osuparser.WithPath("map.osu"),
//	    osuparser.WithStrictParsing(),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for decoding.
type parseOptions struct {
	path           string // identifier used in errors and warnings
	strictParsing  bool   // fail on any warning
	ignoreWarnings bool   // suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		path: "<beatmap>",
	}
}

// WithPath sets the identifier used in error and warning messages when
// decoding from a reader or buffer. Open sets it to the file path
// automatically.
func WithPath(path string) Option {
	return func(o *parseOptions) {
		o.path = path
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default osuparser keeps parsing when a field fails type coercion or
// slider geometry degenerates, returning warnings alongside the decoded
// beatmap. With strict parsing enabled, any warning becomes an error.
func WithStrictParsing() Option {
	return func(o *parseOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default warnings about defaulted fields are collected in
// Beatmap.Warnings. This option discards them after a successful decode.
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}
