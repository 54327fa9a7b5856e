package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Transformer implements dashdoc.Transformer at compile time.
var _ dashdoc.Transformer = (*goquery.Transformer)(nil)

func TestTransformer_Transform(t *testing.T) {
	t.Parallel()

	t.Run("module index page uses menu, legacy and guide rules", func(t *testing.T) {
		t.Parallel()

		page := &dashdoc.SourcePage{Dir: "cuda-runtime-api", Filename: "index.html"}
		html := strings.Replace(moduleIndexPage, "</section>\n</body>",
			`<div class="section-link"><a href="#introduction">Introduction</a></div></section>
</body>`, 1)

		result, err := goquery.NewTransformer().Transform(page, strings.NewReader(html))
		require.NoError(t, err)

		assert.Len(t, result.Entries, 5)
		assert.Equal(t, dashdoc.KindGuide, result.Entries[0].Kind, "guide links come before menu entries")
		assert.Equal(t, "cudaMalloc", result.Entries[2].Name)
		assert.NotContains(t, result.HTML, "wy-nav-side")
		assert.Contains(t, result.HTML, "dashAnchor")
		assert.Contains(t, result.HTML, `id="docset-style"`)
	})

	t.Run("content page ignores the navigation menu", func(t *testing.T) {
		t.Parallel()

		page := &dashdoc.SourcePage{Dir: "cuda-runtime-api", Filename: "group__CUDART__MEMORY.html"}

		result, err := goquery.NewTransformer().Transform(page, strings.NewReader(moduleIndexPage))
		require.NoError(t, err)

		assert.Empty(t, result.Entries)
		assert.NotContains(t, result.HTML, "dashAnchor")
		assert.NotContains(t, result.HTML, "wy-nav-side")
	})

	t.Run("content page with legacy module", func(t *testing.T) {
		t.Parallel()

		page := &dashdoc.SourcePage{Dir: ".", Filename: "group__CUDART__TYPES.html"}

		result, err := goquery.NewTransformer().Transform(page, strings.NewReader(legacyModulePage))
		require.NoError(t, err)

		assert.Len(t, result.Entries, 8)
		assert.Contains(t, result.HTML, "cudaMemcpyKind")
	})

	t.Run("rejects asset pages", func(t *testing.T) {
		t.Parallel()

		page := &dashdoc.SourcePage{Dir: ".", Filename: "style.css"}

		_, err := goquery.NewTransformer().Transform(page, strings.NewReader("body{}"))
		require.Error(t, err)
		assert.Equal(t, dashdoc.ENOTHTML, dashdoc.ErrorCode(err))
	})

	t.Run("reports malformed legacy module", func(t *testing.T) {
		t.Parallel()

		page := &dashdoc.SourcePage{Dir: ".", Filename: "broken.html"}
		html := `<html><body><div class="cppModule"><div><h3 class="fake_sectiontitle">Typedefs</h3></div></div></body></html>`

		_, err := goquery.NewTransformer().Transform(page, strings.NewReader(html))
		require.Error(t, err)
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
	})

	t.Run("output keeps doctype", func(t *testing.T) {
		t.Parallel()

		page := &dashdoc.SourcePage{Dir: ".", Filename: "notices.html"}

		result, err := goquery.NewTransformer().Transform(page, strings.NewReader(sphinxPage))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(result.HTML, "<!DOCTYPE html>"))
	})
}
