package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/build"
	"github.com/fwojciec/dashdoc/fs"
	"github.com/fwojciec/dashdoc/goquery"
	dashslog "github.com/fwojciec/dashdoc/slog"
	"github.com/fwojciec/dashdoc/sqlite"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	// Check the source before the destination is wiped.
	if info, err := os.Stat(c.Source); err != nil || !info.IsDir() {
		err := dashdoc.Errorf(dashdoc.ENOTFOUND, "source directory %q not found", c.Source)
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}

	layout := fs.NewLayout(c.Dest)
	if err := layout.Create(dashdoc.DefaultManifest(), c.Icon); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}

	db := sqlite.NewDB(layout.IndexPath())
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open index at %q: %w", layout.IndexPath(), err)
	}
	defer db.Close()

	// One commit for the whole build; a failed build leaves the index empty.
	tx, err := db.BeginTx(deps.Ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	index := sqlite.NewIndexService(tx)
	builder := &build.Builder{
		Transformer: dashslog.NewLoggingTransformer(goquery.NewTransformer(), deps.Logger),
		Index:       dashslog.NewLoggingEntryWriter(index, deps.Logger),
	}

	progress := func(e build.ProgressEvent) {
		switch e.Type {
		case build.ProgressFallback:
			deps.Logger.InfoContext(deps.Ctx, "copied page verbatim", "path", e.Path)
		case build.ProgressAsset:
			deps.Logger.DebugContext(deps.Ctx, "copied asset", "path", e.Path, "hash", e.Hash)
		}
	}

	result, err := builder.Build(deps.Ctx, c.Source, layout.DocumentsDir(), progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}

	count, err := index.CountEntries(deps.Ctx)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s: %d pages, %d assets, %d index entries\n",
		layout.Root(), result.Pages, result.Assets, count)
	if result.Fallbacks > 0 {
		fmt.Fprintf(deps.Stdout, "%d pages copied without indexing\n", result.Fallbacks)
	}

	return nil
}
