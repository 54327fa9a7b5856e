package mock

import (
	"io"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of dashdoc.Transformer.
type Transformer struct {
	TransformFn func(page *dashdoc.SourcePage, r io.Reader) (*dashdoc.TransformResult, error)
}

func (t *Transformer) Transform(page *dashdoc.SourcePage, r io.Reader) (*dashdoc.TransformResult, error) {
	return t.TransformFn(page, r)
}
