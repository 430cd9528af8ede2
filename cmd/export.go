package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	calics "github.com/divya20032004/custom-event-calendar/internal/ics"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all events to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, ics")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	events := st.Events()

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "ics":
		fmt.Print(calics.Encode(events))
	default: // csv
		printCSV(events)
	}

	return nil
}

func printCSV(events []model.Event) {
	fmt.Println("id,title,description,start,end,category,recurrence_type,recurrence_interval,recurrence_days")
	for _, e := range events {
		days := make([]string, len(e.RecurrenceDaysOfWeek))
		for i, d := range e.RecurrenceDaysOfWeek {
			days[i] = strconv.Itoa(d)
		}
		interval := ""
		if e.RecurrenceType == model.RecurrenceCustom {
			interval = strconv.Itoa(e.RecurrenceInterval)
		}
		fmt.Printf("%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			e.ID,
			csvEscape(e.Title),
			csvEscape(e.Description),
			e.Start.Format(time.RFC3339),
			e.End.Format(time.RFC3339),
			e.Category,
			e.RecurrenceType,
			interval,
			csvEscape(strings.Join(days, ";")),
		)
	}
}

// csvEscape quotes a field when it contains a comma, quote or line break.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
