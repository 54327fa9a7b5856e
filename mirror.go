package dashdoc

import "context"

// DefaultMirrorURLs lists the documentation roots mirrored by default.
var DefaultMirrorURLs = []string{
	"https://docs.nvidia.com/cuda/cuda-runtime-api/index.html",
	"https://docs.nvidia.com/cuda/cuda-driver-api/index.html",
	"https://docs.nvidia.com/cuda/cuda-c-programming-guide/index.html",
	"https://docs.nvidia.com/cuda/cublas/index.html",
	"https://docs.nvidia.com/cuda/cufft/index.html",
	"https://docs.nvidia.com/cuda/curand/index.html",
	"https://docs.nvidia.com/cuda/cusparse/index.html",
	"https://docs.nvidia.com/cuda/cusolver/index.html",
	"https://docs.nvidia.com/cuda/nvrtc/index.html",
}

// MirrorStatus describes the outcome of mirroring one root URL.
type MirrorStatus int

// Mirror statuses.
const (
	MirrorFetched MirrorStatus = iota
	MirrorSkipped
	MirrorFailed
)

// MirrorResult holds the outcome of a mirror run.
type MirrorResult struct {
	Fetched int
	Skipped int
	Failed  int
}

// MirrorProgress reports the outcome for a single root URL.
type MirrorProgress struct {
	URL    string
	Dir    string
	Status MirrorStatus
	Error  error
}

// MirrorProgressFunc is called as root URLs are processed.
type MirrorProgressFunc func(MirrorProgress)

// Mirror downloads documentation roots into a local directory tree.
type Mirror interface {
	// Mirror fetches each URL recursively. Roots whose target directory
	// already exists are skipped. A failure for one root does not stop
	// the others; it is reported through progress and counted.
	Mirror(ctx context.Context, urls []string, progress MirrorProgressFunc) (*MirrorResult, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
