package osuparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Vergenter/osuparser/internal/decoder"
)

// Open reads and decodes a .osu file.
//
// Decoding is a single forward pass over the file; the returned Beatmap
// is complete and read-only. If the file has recoverable problems the
// Beatmap is still returned, with the issues listed in Beatmap.Warnings.
//
// Options customize decoding behavior:
//
//	bm, err := osuparser.Open("map.osu", osuparser.WithStrictParsing())
//
// Example:
//
//	bm, err := osuparser.Open("map.osu")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s [%s]\n", bm.Metadata.Title, bm.Metadata.Version)
func Open(path string, opts ...Option) (*Beatmap, error) {
	options := defaultOptions()
	options.path = path
	for _, opt := range opts {
		opt(options)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open beatmap: %w", err)
	}
	return parse(data, options)
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open that checks the context before
// starting; a single-file decode is bounded by file size and returns
// synchronously.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Beatmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany decodes multiple .osu files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines;
// each parse is independent with no shared state. Results are returned
// in the same order as the input paths. If any file fails, the first
// error is returned and the remaining results are discarded.
//
// Example:
//
//	maps, err := osuparser.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, bm := range maps {
//		fmt.Println(bm.Metadata.Title)
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Beatmap, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Beatmap, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bm, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = bm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Decode decodes a beatmap from a reader. The input is read fully before
// parsing begins. Use WithPath to name the source in error messages.
func Decode(r io.Reader, opts ...Option) (*Beatmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read beatmap: %w", err)
	}
	return Parse(data, opts...)
}

// Parse decodes a beatmap from an in-memory buffer.
//
// On success the Beatmap is fully populated with non-nil collections and
// any recoverable issues accumulated in Beatmap.Warnings; on failure the
// error is a *FormatError carrying the failing line number.
func Parse(data []byte, opts ...Option) (*Beatmap, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return parse(data, options)
}

func parse(data []byte, options *parseOptions) (*Beatmap, error) {
	bm, err := decoder.Decode(data, options.path)
	if err != nil {
		return nil, err
	}

	if options.strictParsing && len(bm.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", bm.Warnings[0])
	}
	if options.ignoreWarnings {
		bm.Warnings = nil
	}
	return bm, nil
}
