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

var (
	listToday    bool
	listWeek     bool
	listAll      bool
	listSearch   string
	listCategory string
	listPlain    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listToday, "today", false, "Show today's events")
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show this week's events")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show every stored event")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only events whose title or description contains this text")
	listCmd.Flags().StringVar(&listCategory, "category", view.FilterAll, "Only events in this category (Work, Personal, Other or All)")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Disable colored output")
}

func runList(cmd *cobra.Command, args []string) error {
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

	if listCategory != view.FilterAll {
		if _, cerr := model.ParseCategory(listCategory); cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
			os.Exit(1)
		}
	}

	events := st.Events()
	switch {
	case listAll:
		// no range restriction
	case listToday:
		events = view.InRange(events, timeutil.StartOfDay(now), timeutil.EndOfDay(now))
	case listWeek:
		from, to := timeutil.WeekRange(now)
		events = view.InRange(events, from, to)
	default:
		// Default to the current month, the calendar's default view.
		from, to := timeutil.MonthRange(now)
		events = view.InRange(events, from, to)
	}

	events = view.Filter(events, listSearch, listCategory)
	printEvents(events, listPlain)
	return nil
}

// categoryANSI is the terminal rendition of the per-category display colors.
var categoryANSI = map[model.Category]string{
	model.CategoryWork:     "\033[34m", // #3a87ad
	model.CategoryPersonal: "\033[33m", // #f0ad4e
	model.CategoryOther:    "\033[36m", // #5bc0de
}

const ansiReset = "\033[0m"

// printEvents groups events by date and prints them.
func printEvents(events []model.Event, plain bool) {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}

	var currentDay string
	for _, e := range events {
		day := e.Start.Format("2006-01-02")
		if day != currentDay {
			fmt.Println(day)
			currentDay = day
		}

		name := string(e.Category)
		if !plain {
			if color, ok := categoryANSI[e.Category]; ok {
				name = color + name + ansiReset
			}
		}

		fmt.Printf("%s  %s  (%s)  [%s]\n",
			timeutil.FormatRange(e.Start, e.End), e.Title, name, shortID(e.ID))
	}
}
