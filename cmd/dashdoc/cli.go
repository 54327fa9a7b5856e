package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// ConvertCmd builds a docset from a local documentation tree.
type ConvertCmd struct {
	Source string
	Dest   string
	Icon   string
}
