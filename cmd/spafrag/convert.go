package main

import (
	"fmt"

	"github.com/fwojciec/spafrag/convert"
)

// Run executes the convert command. Pages that fail or have no body are
// reported but do not make the command fail.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	progress := func(e convert.ProgressEvent) {
		switch e.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d HTML files to process\n", e.Total)
		case convert.ProgressProcessing:
			fmt.Fprintf(deps.Stdout, "\nProcessing: %s\n", e.Path)
		case convert.ProgressConverted:
			if e.Conversion.ScriptPath != "" {
				fmt.Fprintf(deps.Stdout, "  OK: Inline scripts extracted to: %s\n", e.Conversion.ScriptPath)
			}
			fmt.Fprintf(deps.Stdout, "  OK: Fragment created: %s\n", e.Conversion.Destination)
		case convert.ProgressSkipped:
			fmt.Fprintln(deps.Stderr, "  WARNING: no <body> found, skipping")
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  ERROR processing %s: %v\n", e.Path, e.Error)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, deps.Config.Root, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if c.DryRun {
		fmt.Fprintln(deps.Stdout, "\nDry run: no files were written")
	}
	fmt.Fprintf(deps.Stdout, "\nDone: %d/%d pages converted\n", result.Converted, result.Total)

	return nil
}
