package main

import (
	"context"
	"io"

	"github.com/fwojciec/spafrag"
	"github.com/fwojciec/spafrag/convert"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *spafrag.Config

	Runner *convert.Runner

	Finder  spafrag.PageFinder
	Pages   spafrag.PageReader
	Auditor spafrag.AssetAuditor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" help:"YAML configuration file (default: spafrag.yaml when present)"`
	Verbose bool   `short:"v" help:"Log every step to stderr"`

	Convert ConvertCmd `cmd:"" help:"Rewrite pages into SPA fragments"`
	Audit   AuditCmd   `cmd:"" help:"List external scripts and stylesheets referenced by pages"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Root   string `arg:"" optional:"" help:"Page root directory (default: root from config)"`
	Out    string `short:"o" help:"Write fragments below this directory instead of overwriting pages"`
	DryRun bool   `short:"n" help:"Show what would be converted without writing files"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	Root       string `arg:"" optional:"" help:"Page root directory (default: root from config)"`
	GlobalOnly bool   `short:"g" help:"Only list assets already provided by the shell layout"`
}
