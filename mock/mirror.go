package mock

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Mirror = (*Mirror)(nil)

// Mirror is a mock implementation of dashdoc.Mirror.
type Mirror struct {
	MirrorFn func(ctx context.Context, urls []string, progress dashdoc.MirrorProgressFunc) (*dashdoc.MirrorResult, error)
}

func (m *Mirror) Mirror(ctx context.Context, urls []string, progress dashdoc.MirrorProgressFunc) (*dashdoc.MirrorResult, error) {
	return m.MirrorFn(ctx, urls, progress)
}
