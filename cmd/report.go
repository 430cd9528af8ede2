package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
	"github.com/divya20032004/custom-event-calendar/internal/view"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show this week's scheduled time per category",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()

	base, err := store.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	st, err := store.Open(store.EventsFile(base))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	from, to := timeutil.WeekRange(now)
	label := timeutil.ISOWeekLabel(now)

	events := view.InRange(st.Events(), from, to)

	// Aggregate scheduled time by category.
	counts := map[model.Category]int{}
	totals := map[model.Category]time.Duration{}
	for _, e := range events {
		counts[e.Category]++
		totals[e.Category] += e.End.Sub(e.Start)
	}

	var grandCount int
	var grandTotal time.Duration
	for _, c := range model.Categories {
		grandCount += counts[c]
		grandTotal += totals[c]
	}

	switch reportFormat {
	case "csv":
		fmt.Println("category,events,minutes")
		for _, c := range model.Categories {
			fmt.Printf("%s,%d,%d\n", c, counts[c], int(totals[c].Minutes()))
		}
	case "json":
		fmt.Println("{")
		fmt.Printf("  \"week\": %q,\n", label)
		fmt.Println("  \"categories\": [")
		for i, c := range model.Categories {
			comma := ","
			if i == len(model.Categories)-1 {
				comma = ""
			}
			fmt.Printf("    {\"category\": %q, \"events\": %d, \"minutes\": %d}%s\n",
				c, counts[c], int(totals[c].Minutes()), comma)
		}
		fmt.Println("  ],")
		fmt.Printf("  \"total_events\": %d,\n", grandCount)
		fmt.Printf("  \"total_minutes\": %d\n", int(grandTotal.Minutes()))
		fmt.Println("}")
	default: // md
		fmt.Printf("Week %s\n", label)
		fmt.Println("--------------------------------")
		for _, c := range model.Categories {
			fmt.Printf("%-12s%3d events  %s\n", c, counts[c], formatHours(totals[c]))
		}
		fmt.Println("--------------------------------")
		fmt.Printf("%-12s%3d events  %s\n", "Total", grandCount, formatHours(grandTotal))
	}

	return nil
}

// formatHours formats a duration as "3h 30m" or "45m".
func formatHours(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
