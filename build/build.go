// Package build orchestrates the conversion of a mirrored documentation tree
// into the documents directory and search index of a docset.
package build

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/fs"
)

// Builder walks a source tree, rewrites its pages and fills the index.
type Builder struct {
	Transformer dashdoc.Transformer
	Index       dashdoc.EntryWriter
}

// Result holds the outcome of a build.
type Result struct {
	Pages     int // HTML pages rewritten
	Assets    int // non-HTML files copied
	Fallbacks int // HTML pages copied verbatim after a transform error
	Entries   int // entries written to the index, duplicates included
	Dropped   int // entries discarded by ResolveEntry
}

// ProgressEvent reports progress for one file of the source tree.
type ProgressEvent struct {
	Type    ProgressType
	Path    string
	Entries int
	Hash    string
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressPage ProgressType = iota
	ProgressAsset
	ProgressFallback
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build mirrors sourceDir into docsDir. Directories are recreated, assets
// are copied, and HTML pages are transformed with their entries written to
// the index. A page that fails to transform is copied verbatim and reported
// as ProgressFallback. Index errors and malformed entry names abort the build.
func (b *Builder) Build(ctx context.Context, sourceDir, docsDir string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	result := &Result{}

	err := filepath.WalkDir(sourceDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(docsDir, rel)

		if d.IsDir() {
			return os.MkdirAll(dst, 0755)
		}

		page := &dashdoc.SourcePage{
			Dir:      filepath.ToSlash(filepath.Dir(rel)),
			Filename: d.Name(),
		}

		if page.Kind() == dashdoc.PageAsset {
			hash, err := fs.CopyFile(path, dst)
			if err != nil {
				return fmt.Errorf("failed to copy %s: %w", rel, err)
			}
			result.Assets++
			progress(ProgressEvent{Type: ProgressAsset, Path: page.RelPath(), Hash: hash})
			return nil
		}

		return b.buildPage(ctx, page, path, dst, result, progress)
	})
	if err != nil {
		return result, err
	}

	return result, nil
}

func (b *Builder) buildPage(ctx context.Context, page *dashdoc.SourcePage, src, dst string, result *Result, progress ProgressFunc) error {
	transformed, err := b.transform(page, src)
	if err != nil {
		hash, copyErr := fs.CopyFile(src, dst)
		if copyErr != nil {
			return fmt.Errorf("failed to copy %s: %w", page.RelPath(), copyErr)
		}
		result.Fallbacks++
		progress(ProgressEvent{Type: ProgressFallback, Path: page.RelPath(), Hash: hash, Error: err})
		return nil
	}

	hash, err := fs.WriteFile(dst, transformed.HTML)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", page.RelPath(), err)
	}

	written := 0
	for _, raw := range transformed.Entries {
		entry, err := dashdoc.ResolveEntry(page, raw)
		if err != nil {
			return err
		}
		if entry == nil {
			result.Dropped++
			continue
		}
		if err := b.Index.InsertEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to index %q from %s: %w", entry.Name, page.RelPath(), err)
		}
		written++
	}

	result.Pages++
	result.Entries += written
	progress(ProgressEvent{Type: ProgressPage, Path: page.RelPath(), Entries: written, Hash: hash})
	return nil
}

func (b *Builder) transform(page *dashdoc.SourcePage, src string) (*dashdoc.TransformResult, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return b.Transformer.Transform(page, f)
}
