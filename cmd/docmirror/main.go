package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dashdoc"
	dashslog "github.com/fwojciec/dashdoc/slog"
	"github.com/fwojciec/dashdoc/wget"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Exec runs the wget process. Nil runs the real binary.
	Exec wget.RunFunc
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmirror"),
		kong.Description("Mirror the CUDA online documentation with wget"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	urls := cli.URLs
	if len(urls) == 0 {
		urls = dashdoc.DefaultMirrorURLs
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	opts := []wget.Option{
		wget.WithConcurrency(cli.Concurrency),
		wget.WithLimiter(wget.NewDomainLimiter(cli.Rate)),
	}
	if m.Exec != nil {
		opts = append(opts, wget.WithRunFunc(m.Exec))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Mirror: dashslog.NewLoggingMirror(wget.NewMirror(cli.Dest, opts...), logger),
	}

	cmd := &MirrorCmd{URLs: urls}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dest        string   `short:"d" default:"." help:"Directory to mirror into"`
	URLs        []string `short:"u" name:"url" sep:"none" help:"Documentation root to mirror (repeatable, defaults to the CUDA roots)"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent wget processes"`
	Rate        float64  `short:"r" default:"1" help:"Fetches started per second per domain"`
}
