// Package wget mirrors documentation sites by shelling out to GNU wget.
package wget

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/dashdoc"
	"golang.org/x/sync/errgroup"
)

// DefaultBinary is the wget executable looked up on PATH.
const DefaultBinary = "wget"

// RunFunc runs an external command in dir.
type RunFunc func(ctx context.Context, dir, name string, args ...string) error

// Ensure Mirror implements dashdoc.Mirror at compile time.
var _ dashdoc.Mirror = (*Mirror)(nil)

// Mirror downloads documentation roots into a destination directory using
// wget's recursive mode. wget lays files out as <dest>/<host>/<path>.
type Mirror struct {
	dest        string
	binary      string
	run         RunFunc
	limiter     dashdoc.DomainLimiter
	concurrency int
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithBinary sets the wget executable.
func WithBinary(name string) Option {
	return func(m *Mirror) {
		m.binary = name
	}
}

// WithRunFunc replaces the command runner. Tests use this to avoid
// starting processes.
func WithRunFunc(run RunFunc) Option {
	return func(m *Mirror) {
		m.run = run
	}
}

// WithLimiter paces mirror launches per domain.
func WithLimiter(limiter dashdoc.DomainLimiter) Option {
	return func(m *Mirror) {
		m.limiter = limiter
	}
}

// WithConcurrency sets how many wget processes may run at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(m *Mirror) {
		m.concurrency = n
	}
}

// NewMirror creates a new Mirror writing into dest.
func NewMirror(dest string, opts ...Option) *Mirror {
	m := &Mirror{
		dest:        dest,
		binary:      DefaultBinary,
		run:         runCommand,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.concurrency < 1 {
		m.concurrency = 1
	}
	return m
}

// Mirror fetches every root URL whose target directory does not exist yet.
// A wget failure is reported through progress and counted; only invalid
// URLs and context cancellation return an error.
func (m *Mirror) Mirror(ctx context.Context, urls []string, progress dashdoc.MirrorProgressFunc) (*dashdoc.MirrorResult, error) {
	if progress == nil {
		progress = func(dashdoc.MirrorProgress) {}
	}

	parsed := make([]*url.URL, 0, len(urls))
	for _, raw := range urls {
		u, err := parseRoot(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, u)
	}

	if err := os.MkdirAll(m.dest, 0755); err != nil {
		return nil, fmt.Errorf("failed to create mirror directory: %w", err)
	}

	var mu sync.Mutex
	result := &dashdoc.MirrorResult{}
	report := func(p dashdoc.MirrorProgress) {
		mu.Lock()
		defer mu.Unlock()
		switch p.Status {
		case dashdoc.MirrorFetched:
			result.Fetched++
		case dashdoc.MirrorSkipped:
			result.Skipped++
		case dashdoc.MirrorFailed:
			result.Failed++
		}
		progress(p)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for _, u := range parsed {
		g.Go(func() error {
			dir := TargetDir(m.dest, u)
			if _, err := os.Stat(dir); err == nil {
				report(dashdoc.MirrorProgress{URL: u.String(), Dir: dir, Status: dashdoc.MirrorSkipped})
				return nil
			}

			if m.limiter != nil {
				if err := m.limiter.Wait(gctx, u.Host); err != nil {
					return err
				}
			}

			if err := m.run(gctx, m.dest, m.binary, Args(u)...); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				report(dashdoc.MirrorProgress{URL: u.String(), Dir: dir, Status: dashdoc.MirrorFailed, Error: err})
				return nil
			}

			report(dashdoc.MirrorProgress{URL: u.String(), Dir: dir, Status: dashdoc.MirrorFetched})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

// Args returns the wget arguments used to mirror u.
func Args(u *url.URL) []string {
	return []string{
		"--recursive",
		"--no-clobber",
		"--page-requisites",
		"--html-extension",
		"--convert-links",
		"--restrict-file-names=windows",
		"--domains", u.Hostname(),
		"--no-parent",
		u.String(),
	}
}

// TargetDir returns the directory wget creates for the root u under dest:
// the host followed by the directory part of the URL path.
func TargetDir(dest string, u *url.URL) string {
	dir := u.Path
	if !strings.HasSuffix(dir, "/") {
		dir = path.Dir(dir)
	}
	return filepath.Join(dest, u.Host, filepath.FromSlash(strings.Trim(dir, "/")))
}

func parseRoot(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "invalid mirror URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "mirror URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "mirror URL %q has no host", raw)
	}
	return u, nil
}

func runCommand(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, lastLine(out))
	}
	return nil
}

// lastLine returns the last non-empty line of wget's output, which usually
// carries the reason for a failure.
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return lines[len(lines)-1]
}
