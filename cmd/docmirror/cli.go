package main

import (
	"context"
	"io"

	"github.com/fwojciec/dashdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Mirror dashdoc.Mirror
}

// MirrorCmd mirrors documentation roots.
type MirrorCmd struct {
	URLs []string
}
