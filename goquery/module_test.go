package goquery_test

import (
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moduleIndexPage = `<html><head></head><body>
<nav class="wy-nav-side"><div class="wy-menu wy-menu-vertical">
<ul>
<li><a class="reference internal" href="#introduction">1. Introduction</a></li>
<li><a class="reference internal" href="#cudamalloc">2.1. cudaMalloc()</a></li>
<li><a class="reference internal" href="docs.html#Foo_t">2.2.1. Foo_t</a></li>
<li><a class="reference internal" href="#missing">3. Missing Target</a></li>
<li><a class="reference external" href="https://nvidia.com">NVIDIA</a></li>
</ul>
</div></nav>
<section class="wy-nav-content-wrap">
<section id="introduction"><h1>Introduction</h1></section>
<dl><dt id="cudamalloc">cudaMalloc</dt></dl>
<span id="Foo_t">Foo_t</span>
</section>
</body></html>`

func TestExtractModuleMenu(t *testing.T) {
	t.Parallel()

	t.Run("classifies menu links", func(t *testing.T) {
		t.Parallel()

		entries := goquery.ExtractModuleMenu(parse(t, moduleIndexPage))

		assert.Equal(t, []dashdoc.Entry{
			{Name: "Introduction", Kind: dashdoc.KindGuide, Path: "#introduction"},
			{Name: "cudaMalloc", Kind: dashdoc.KindFunction, Path: "#cudamalloc"},
			{Name: "Foo_t", Kind: dashdoc.KindType, Path: "docs.html#Foo_t"},
			{Name: "Missing Target", Kind: dashdoc.KindGuide, Path: "#missing"},
		}, entries)
	})

	t.Run("inserts dash anchor before fragment target", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, moduleIndexPage)
		goquery.ExtractModuleMenu(doc)

		prev := doc.Find("#cudamalloc").Prev()
		require.Equal(t, 1, prev.Length())
		assert.True(t, prev.HasClass("dashAnchor"))
		name, _ := prev.Attr("name")
		assert.Equal(t, "//apple_ref/cpp/Function/2.1.%20cudaMalloc%28%29", name)

		prev = doc.Find("#introduction").Prev()
		name, _ = prev.Attr("name")
		assert.Equal(t, "//apple_ref/cpp/Guide/1.%20Introduction", name)

		prev = doc.Find("#Foo_t").Prev()
		name, _ = prev.Attr("name")
		assert.Equal(t, "//apple_ref/cpp/Type/2.2.1.%20Foo_t", name)
	})

	t.Run("missing target still emits entry without marker", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, moduleIndexPage)
		entries := goquery.ExtractModuleMenu(doc)

		assert.Len(t, entries, 4)
		assert.Equal(t, 3, doc.Find("a.dashAnchor").Length())
	})

	t.Run("href with two fragments gets no marker", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<div class="wy-menu-vertical"><a class="reference internal" href="#a#b">Odd</a></div>
<p id="a">x</p><p id="a#b">y</p>
</body></html>`)

		entries := goquery.ExtractModuleMenu(doc)

		require.Len(t, entries, 1)
		assert.Zero(t, doc.Find("a.dashAnchor").Length())
	})

	t.Run("strips only dotted outline groups", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<div class="wy-menu-vertical">
<a class="reference internal" href="#speedup">1.5x Faster</a>
<a class="reference internal" href="#arch">3.2. 64-bit Addressing</a>
</div>
</body></html>`)

		entries := goquery.ExtractModuleMenu(doc)

		assert.Equal(t, []dashdoc.Entry{
			{Name: "5x Faster", Kind: dashdoc.KindGuide, Path: "#speedup"},
			{Name: "64-bit Addressing", Kind: dashdoc.KindGuide, Path: "#arch"},
		}, entries)
	})

	t.Run("joins text split across child elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<div class="wy-menu-vertical"><a class="reference internal" href="#cudamalloc"><span class="section-number">6.1.</span>
   cudaMalloc()</a></div>
<dl><dt id="cudamalloc">cudaMalloc</dt></dl>
</body></html>`)

		entries := goquery.ExtractModuleMenu(doc)

		assert.Equal(t, []dashdoc.Entry{
			{Name: "cudaMalloc", Kind: dashdoc.KindFunction, Path: "#cudamalloc"},
		}, entries)
		name, _ := doc.Find("#cudamalloc").Prev().Attr("name")
		assert.Equal(t, "//apple_ref/cpp/Function/6.1.%20cudaMalloc%28%29", name)
	})
}
