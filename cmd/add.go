package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/divya20032004/custom-event-calendar/internal/config"
	"github.com/divya20032004/custom-event-calendar/internal/form"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
)

var (
	addDescription string
	addStart       string
	addEnd         string
	addCategory    string
	addRecurrence  string
	addInterval    int
	addDays        string
	addYes         bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new event",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "Optional description")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start time (YYYY-MM-DDTHH:MM, local; default now)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (YYYY-MM-DDTHH:MM, local; default start + 1h)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category: Work, Personal or Other")
	addCmd.Flags().StringVar(&addRecurrence, "recurrence", "", "Recurrence: none, daily, weekly, monthly or custom")
	addCmd.Flags().IntVar(&addInterval, "interval", 1, "Recurrence interval (with --recurrence custom)")
	addCmd.Flags().StringVar(&addDays, "days", "", "Comma-separated recurrence weekdays 0-6, Sunday=0 (with --recurrence custom)")
	addCmd.Flags().BoolVar(&addYes, "yes", false, "Save without asking when the event conflicts")
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	f := form.New(now)
	f.Apply(form.SetTitle{Value: args[0]})
	if c, cerr := model.ParseCategory(cfg.Calendar.DefaultCategory); cerr == nil {
		f.Apply(form.SetCategory{Value: c})
	}

	if addDescription != "" {
		f.Apply(form.SetDescription{Value: addDescription})
	}
	if addStart != "" {
		f.Apply(form.SetStart{Value: addStart})
		if addEnd == "" {
			// Keep the one-hour default relative to the chosen start.
			if t, perr := timeutil.ParseLocalDateTime(addStart); perr == nil {
				f.Apply(form.SetEnd{Value: timeutil.FormatLocalDateTime(t.Add(time.Hour))})
			}
		}
	}
	if addEnd != "" {
		f.Apply(form.SetEnd{Value: addEnd})
	}
	if addCategory != "" {
		c, cerr := model.ParseCategory(addCategory)
		if cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
			os.Exit(1)
		}
		f.Apply(form.SetCategory{Value: c})
	}
	if addRecurrence != "" {
		r, rerr := model.ParseRecurrenceType(addRecurrence)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, rerr)
			os.Exit(1)
		}
		f.Apply(form.SetRecurrenceType{Value: r})
	}
	if cmd.Flags().Changed("interval") {
		f.Apply(form.SetRecurrenceInterval{Value: addInterval})
	}
	if addDays != "" {
		days, derr := parseDays(addDays)
		if derr != nil {
			fmt.Fprintln(os.Stderr, derr)
			os.Exit(1)
		}
		for _, d := range days {
			f.Apply(form.ToggleRecurrenceDay{Day: d, On: true})
		}
	}

	ev, saved := submitForm(f, st, addYes)
	if !saved {
		return nil
	}

	fmt.Printf("Added event %q  %s %s  [%s]\n",
		ev.Title, ev.Start.Format("2006-01-02"), timeutil.FormatRange(ev.Start, ev.End), shortID(ev.ID))
	return nil
}
