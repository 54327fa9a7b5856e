package build_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/build"
	"github.com/fwojciec/dashdoc/fs"
	"github.com/fwojciec/dashdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root from a relative path → content map.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// listTree returns the slash-separated relative paths of all files and
// directories under root.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.Walk(root, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(paths)
	return paths
}

// echoTransformer returns the page unchanged and emits the given entries.
func echoTransformer(entries ...dashdoc.Entry) *mock.Transformer {
	return &mock.Transformer{
		TransformFn: func(_ *dashdoc.SourcePage, r io.Reader) (*dashdoc.TransformResult, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return &dashdoc.TransformResult{HTML: "rewritten:" + string(data), Entries: entries}, nil
		},
	}
}

func recordingIndex(inserted *[]*dashdoc.Entry) *mock.EntryWriter {
	return &mock.EntryWriter{
		InsertEntryFn: func(_ context.Context, entry *dashdoc.Entry) error {
			*inserted = append(*inserted, entry)
			return nil
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("mirrors the source tree structure", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := filepath.Join(t.TempDir(), "Documents")
		writeTree(t, src, map[string]string{
			"index.html":                       "<html></html>",
			"cuda-runtime-api/index.html":      "<html></html>",
			"cuda-runtime-api/_static/a.css":   "body{}",
			"cuda-runtime-api/images/logo.png": "\x89PNG",
		})
		require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))

		var inserted []*dashdoc.Entry
		b := &build.Builder{Transformer: echoTransformer(), Index: recordingIndex(&inserted)}

		result, err := b.Build(context.Background(), src, dst, nil)
		require.NoError(t, err)

		assert.Equal(t, listTree(t, src), listTree(t, dst))
		assert.Equal(t, 2, result.Pages)
		assert.Equal(t, 2, result.Assets)
		assert.Zero(t, result.Fallbacks)
	})

	t.Run("rewrites pages and copies assets verbatim", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := t.TempDir()
		writeTree(t, src, map[string]string{
			"page.html": "<p>x</p>",
			"data.bin":  "\x00\x01",
		})

		var inserted []*dashdoc.Entry
		b := &build.Builder{Transformer: echoTransformer(), Index: recordingIndex(&inserted)}

		_, err := b.Build(context.Background(), src, dst, nil)
		require.NoError(t, err)

		page, err := os.ReadFile(filepath.Join(dst, "page.html"))
		require.NoError(t, err)
		assert.Equal(t, "rewritten:<p>x</p>", string(page))

		asset, err := os.ReadFile(filepath.Join(dst, "data.bin"))
		require.NoError(t, err)
		assert.Equal(t, "\x00\x01", string(asset))
	})

	t.Run("resolves entries before indexing", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := t.TempDir()
		writeTree(t, src, map[string]string{"cublas/index.html": "<html></html>"})

		var inserted []*dashdoc.Entry
		b := &build.Builder{
			Transformer: echoTransformer(
				dashdoc.Entry{Name: "cublasCreate", Kind: dashdoc.KindFunction, Path: "index.html#cublascreate"},
				dashdoc.Entry{Name: "Other Page", Kind: dashdoc.KindGuide, Path: "other.html#x"},
				dashdoc.Entry{Name: "Nested", Kind: dashdoc.KindGuide, Path: "#a/b"},
			),
			Index: recordingIndex(&inserted),
		}

		result, err := b.Build(context.Background(), src, dst, nil)
		require.NoError(t, err)

		require.Len(t, inserted, 1)
		assert.Equal(t, &dashdoc.Entry{Name: "cublasCreate", Kind: dashdoc.KindFunction, Path: "cublas/index.html#cublascreate"}, inserted[0])
		assert.Equal(t, 1, result.Entries)
		assert.Equal(t, 2, result.Dropped)
	})

	t.Run("copies page verbatim when transform fails", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := t.TempDir()
		writeTree(t, src, map[string]string{"broken.html": "<div class=cppModule>"})

		transformErr := dashdoc.Errorf(dashdoc.EINVALID, "functions section has no member list")
		transformer := &mock.Transformer{
			TransformFn: func(*dashdoc.SourcePage, io.Reader) (*dashdoc.TransformResult, error) {
				return nil, transformErr
			},
		}
		var events []build.ProgressEvent
		b := &build.Builder{Transformer: transformer, Index: &mock.EntryWriter{}}

		result, err := b.Build(context.Background(), src, dst, func(e build.ProgressEvent) {
			events = append(events, e)
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dst, "broken.html"))
		require.NoError(t, err)
		assert.Equal(t, "<div class=cppModule>", string(data))
		assert.Equal(t, 1, result.Fallbacks)
		assert.Zero(t, result.Pages)

		require.Len(t, events, 1)
		assert.Equal(t, build.ProgressFallback, events[0].Type)
		assert.Equal(t, "broken.html", events[0].Path)
		assert.ErrorIs(t, events[0].Error, transformErr)
		assert.NotEmpty(t, events[0].Hash)
	})

	t.Run("aborts on index error", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := t.TempDir()
		writeTree(t, src, map[string]string{"index.html": "<html></html>"})

		dbErr := errors.New("disk full")
		b := &build.Builder{
			Transformer: echoTransformer(dashdoc.Entry{Name: "x", Kind: dashdoc.KindGuide, Path: "#x"}),
			Index: &mock.EntryWriter{
				InsertEntryFn: func(context.Context, *dashdoc.Entry) error { return dbErr },
			},
		}

		_, err := b.Build(context.Background(), src, dst, nil)
		require.ErrorIs(t, err, dbErr)
	})

	t.Run("reports progress per file", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := t.TempDir()
		writeTree(t, src, map[string]string{
			"a.html": "<html></html>",
			"b.css":  "x",
		})

		var events []build.ProgressEvent
		var inserted []*dashdoc.Entry
		b := &build.Builder{
			Transformer: echoTransformer(dashdoc.Entry{Name: "A", Kind: dashdoc.KindGuide, Path: "#a"}),
			Index:       recordingIndex(&inserted),
		}

		_, err := b.Build(context.Background(), src, dst, func(e build.ProgressEvent) {
			events = append(events, e)
		})
		require.NoError(t, err)

		require.Len(t, events, 2)
		assert.Equal(t, build.ProgressPage, events[0].Type)
		assert.Equal(t, "a.html", events[0].Path)
		assert.Equal(t, 1, events[0].Entries)
		assert.Equal(t, build.ProgressAsset, events[1].Type)
		assert.Equal(t, "b.css", events[1].Path)

		pageHash, err := fs.HashFile(filepath.Join(dst, "a.html"))
		require.NoError(t, err)
		assert.Equal(t, pageHash, events[0].Hash)
		assetHash, err := fs.HashFile(filepath.Join(dst, "b.css"))
		require.NoError(t, err)
		assert.Equal(t, assetHash, events[1].Hash)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		writeTree(t, src, map[string]string{"a.html": "<html></html>"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		b := &build.Builder{Transformer: echoTransformer(), Index: &mock.EntryWriter{}}

		_, err := b.Build(ctx, src, t.TempDir(), nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns error for missing source", func(t *testing.T) {
		t.Parallel()

		b := &build.Builder{Transformer: echoTransformer(), Index: &mock.EntryWriter{}}

		_, err := b.Build(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir(), nil)
		require.Error(t, err)
	})
}
