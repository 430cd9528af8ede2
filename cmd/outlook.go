package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/divya20032004/custom-event-calendar/internal/config"
	"github.com/divya20032004/custom-event-calendar/internal/importer"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/msgraph"
	"github.com/divya20032004/custom-event-calendar/internal/store"
	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
)

var (
	outlookImportFrom     string
	outlookImportTo       string
	outlookImportDate     string
	outlookImportToday    bool
	outlookImportDryRun   bool
	outlookImportCategory string
	outlookImportTZ       string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import Outlook calendar events",
	Args:  cobra.NoArgs,
	RunE:  runOutlookImport,
}

func init() {
	outlookImportCmd.Flags().StringVar(&outlookImportFrom, "from", "", "Start date (YYYY-MM-DD); required when --to is specified")
	outlookImportCmd.Flags().StringVar(&outlookImportTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	outlookImportCmd.Flags().StringVar(&outlookImportDate, "date", "", "Import a specific date (YYYY-MM-DD)")
	outlookImportCmd.Flags().BoolVar(&outlookImportToday, "today", false, "Import only today (default)")
	outlookImportCmd.Flags().BoolVar(&outlookImportDryRun, "dry-run", false, "Print planned operations without writing")
	outlookImportCmd.Flags().StringVar(&outlookImportCategory, "category", "", "Category for imported events (default from config)")
	outlookImportCmd.Flags().StringVar(&outlookImportTZ, "timezone", "", "IANA timezone for event times (e.g. Europe/Berlin)")
	outlookCmd.AddCommand(outlookImportCmd)
}

func runOutlookImport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	var from, to time.Time

	switch {
	case outlookImportDate != "":
		d, err := time.Parse("2006-01-02", outlookImportDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --date value %q: %v\n", outlookImportDate, err)
			os.Exit(1)
		}
		from = timeutil.StartOfDay(d)
		to = timeutil.EndOfDay(d)

	case outlookImportFrom != "" || outlookImportTo != "":
		if outlookImportTo != "" && outlookImportFrom == "" {
			fmt.Fprintln(os.Stderr, "--from is required when --to is specified")
			os.Exit(1)
		}
		var err error
		from, err = time.Parse("2006-01-02", outlookImportFrom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --from value %q: %v\n", outlookImportFrom, err)
			os.Exit(1)
		}
		from = timeutil.StartOfDay(from)

		if outlookImportTo != "" {
			t, err := time.Parse("2006-01-02", outlookImportTo)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --to value %q: %v\n", outlookImportTo, err)
				os.Exit(1)
			}
			to = timeutil.EndOfDay(t)
		} else {
			to = timeutil.EndOfDay(now)
		}

	default:
		// Default: today.
		from = timeutil.StartOfDay(now)
		to = timeutil.EndOfDay(now)
	}

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

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	timezone := outlookImportTZ
	if timezone == "" {
		timezone = cfg.Outlook.Timezone
	}

	categoryName := cfg.Outlook.DefaultCategory
	if outlookImportCategory != "" {
		categoryName = outlookImportCategory
	}
	category, err := model.ParseCategory(categoryName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dryTag := ""
	if outlookImportDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Importing Outlook events (%s → %s)%s...\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"), dryTag)
	fmt.Println()

	ctx := context.Background()

	client, err := msgraph.Connect(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	drafts, mapErrors, err := client.FetchDrafts(ctx, from, to, timezone, category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch calendar events: %v\n", err)
		os.Exit(1)
	}

	result := importer.Run(st, drafts, importer.Options{DryRun: outlookImportDryRun})
	result.Errors += mapErrors

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d imported\n", result.Imported)
	fmt.Printf("  %d updated\n", result.Updated)
	fmt.Printf("  %d skipped\n", result.Skipped)
	fmt.Printf("  %d conflicts\n", result.Conflicts)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
