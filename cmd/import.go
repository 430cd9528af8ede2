package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/divya20032004/custom-event-calendar/internal/config"
	calics "github.com/divya20032004/custom-event-calendar/internal/ics"
	"github.com/divya20032004/custom-event-calendar/internal/importer"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
)

var (
	importDryRun   bool
	importCategory string
)

var importCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Import events from an iCalendar file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Print planned operations without writing")
	importCmd.Flags().StringVar(&importCategory, "category", "", "Category for imported events (default from config)")
}

func runImport(cmd *cobra.Command, args []string) error {
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

	categoryName := cfg.Calendar.DefaultCategory
	if importCategory != "" {
		categoryName = importCategory
	}
	category, err := model.ParseCategory(categoryName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fh, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", args[0], err)
		os.Exit(1)
	}
	defer fh.Close()

	drafts, unparsable, err := calics.Parse(fh, category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dryTag := ""
	if importDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Importing %d events from %s%s...\n", len(drafts), args[0], dryTag)
	fmt.Println()

	result := importer.Run(st, drafts, importer.Options{DryRun: importDryRun})

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d imported\n", result.Imported)
	fmt.Printf("  %d updated\n", result.Updated)
	fmt.Printf("  %d skipped\n", result.Skipped+unparsable)
	fmt.Printf("  %d conflicts\n", result.Conflicts)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
