package main

import (
	"fmt"

	"github.com/fwojciec/spafrag"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	paths, err := deps.Finder.FindPages(deps.Ctx, deps.Config.Root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var globalScripts, globalStyles int
	for _, path := range paths {
		page, err := deps.Pages.ReadPage(deps.Ctx, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", path, err)
			continue
		}

		report, err := deps.Auditor.Audit(page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", path, spafrag.ErrorMessage(err))
			continue
		}

		scripts := c.filter(report.Scripts)
		styles := c.filter(report.Stylesheets)
		if len(scripts) == 0 && len(styles) == 0 {
			continue
		}

		fmt.Fprintln(deps.Stdout, path)
		for _, ref := range scripts {
			fmt.Fprintf(deps.Stdout, "  script      %s%s\n", ref.URL, globalMarker(ref))
			if ref.Global {
				globalScripts++
			}
		}
		for _, ref := range styles {
			fmt.Fprintf(deps.Stdout, "  stylesheet  %s%s\n", ref.URL, globalMarker(ref))
			if ref.Global {
				globalStyles++
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "\nAudited %d pages: %d global script references, %d global stylesheet references\n",
		len(paths), globalScripts, globalStyles)

	return nil
}

func (c *AuditCmd) filter(refs []spafrag.AssetRef) []spafrag.AssetRef {
	if !c.GlobalOnly {
		return refs
	}
	var out []spafrag.AssetRef
	for _, ref := range refs {
		if ref.Global {
			out = append(out, ref)
		}
	}
	return out
}

func globalMarker(ref spafrag.AssetRef) string {
	if ref.Global {
		return "  (global)"
	}
	return ""
}
