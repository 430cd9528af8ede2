// Package importer feeds externally sourced event drafts (ICS files,
// Outlook calendars) into the store. Re-running the same import is
// idempotent: drafts are matched to previously imported events by their
// ImportUID.
package importer

import (
	"fmt"

	"github.com/divya20032004/custom-event-calendar/internal/conflict"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
)

// Result holds counters for one import run.
type Result struct {
	Imported  int
	Updated   int
	Skipped   int
	Conflicts int
	Errors    int
}

// Options configures an import run.
type Options struct {
	// DryRun reports planned operations without writing anything.
	DryRun bool
}

// Run imports the drafts into the store, printing one progress line per
// draft. Conflicting drafts are skipped outright; an import never asks for
// an override.
func Run(st *store.Store, drafts []model.Draft, opts Options) Result {
	var result Result

	for _, d := range drafts {
		if existing, ok := st.FindByImportUID(d.ImportUID); ok {
			if unchanged(existing, d) {
				fmt.Printf("  – Skipped:  %s (already exists)\n", d.Title)
				result.Skipped++
				continue
			}
			eval := conflict.Evaluate(d.Start, d.End, st.Events(), existing.ID)
			if eval.Result != conflict.Clear {
				fmt.Printf("  ! Conflict: %s (left unchanged)\n", d.Title)
				result.Conflicts++
				continue
			}
			if !opts.DryRun {
				if _, err := st.Update(existing.ID, d); err != nil {
					fmt.Printf("  ! Error updating %q: %v\n", d.Title, err)
					result.Errors++
					continue
				}
			}
			fmt.Printf("  ↑ Updated:  %s\n", d.Title)
			result.Updated++
			continue
		}

		eval := conflict.Evaluate(d.Start, d.End, st.Events(), "")
		switch eval.Result {
		case conflict.Invalid:
			fmt.Printf("  ! Error:    %s has an invalid time range\n", d.Title)
			result.Errors++
			continue
		case conflict.Conflict:
			fmt.Printf("  ! Conflict: %s (not imported)\n", d.Title)
			result.Conflicts++
			continue
		}

		if !opts.DryRun {
			if _, err := st.Create(d); err != nil {
				fmt.Printf("  ! Error saving %q: %v\n", d.Title, err)
				result.Errors++
				continue
			}
		}
		fmt.Printf("  ✓ Imported: %s\n", d.Title)
		result.Imported++
	}

	return result
}

// unchanged reports whether the stored event already matches the draft in
// every field an import controls.
func unchanged(ev model.Event, d model.Draft) bool {
	return ev.Title == d.Title &&
		ev.Description == d.Description &&
		ev.Start.Equal(d.Start) &&
		ev.End.Equal(d.End) &&
		ev.Category == d.Category
}
