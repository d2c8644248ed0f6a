package catalog

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ukechords/pkg/errors"
	"github.com/matzehuels/ukechords/pkg/observability"
)

// maxParallelReads bounds concurrent file reads in LoadFiles.
const maxParallelReads = 4

// Default returns the catalog built from the embedded definitions.
func Default() *Catalog {
	data, err := definitionsFS.ReadFile("definitions/ukulele.txt")
	if err != nil {
		panic("catalog: embedded definitions missing: " + err.Error())
	}
	cat, err := parseSource(bytes.NewReader(data), DefaultSource)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return cat
}

// LoadFile reads and parses a single definitions file. A missing or
// unreadable file is fatal; malformed lines are not.
func LoadFile(path string) (*Catalog, error) {
	return LoadFiles(context.Background(), path)
}

// LoadFiles reads the given files concurrently and parses them, in argument
// order, into one catalog. Earlier files win on lookup because lookups stop
// at the first match.
func LoadFiles(ctx context.Context, paths ...string) (*Catalog, error) {
	return Merge(ctx, nil, paths...)
}

// Merge is like LoadFiles but starts from the chords of base, which may be
// nil. Chords from base come first.
//
// Every dropped line from the new files is reported to the catalog hooks,
// followed by one OnCatalogLoad for the whole merge.
func Merge(ctx context.Context, base *Catalog, paths ...string) (*Catalog, error) {
	start := time.Now()
	contents := make([][]byte, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := readSource(path)
			if err != nil {
				return err
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat := &Catalog{}
	if base != nil {
		cat.chords = append(cat.chords, base.chords...)
		cat.dropped = append(cat.dropped, base.dropped...)
	}
	known := len(cat.dropped)
	for i, data := range contents {
		if err := cat.read(bytes.NewReader(data), paths[i]); err != nil {
			return nil, err
		}
	}

	hooks := observability.Catalog()
	for _, d := range cat.dropped[known:] {
		hooks.OnLineDropped(d.Source, d.Line, d.Err)
	}
	hooks.OnCatalogLoad(paths, len(cat.chords), len(cat.dropped)-known, time.Since(start))
	return cat, nil
}

func readSource(path string) ([]byte, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return data, nil
	case stderrors.Is(err, fs.ErrNotExist):
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definitions file %s", path)
	default:
		return nil, errors.Wrap(errors.ErrCodeReadFailed, err, "read definitions %s", path)
	}
}
