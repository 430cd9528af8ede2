package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/divya20032004/custom-event-calendar/internal/form"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
)

var (
	editTitle       string
	editDescription string
	editStart       string
	editEnd         string
	editCategory    string
	editRecurrence  string
	editInterval    int
	editSetDays     string
	editUnsetDays   string
	editYes         bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time (YYYY-MM-DDTHH:MM, local)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time (YYYY-MM-DDTHH:MM, local)")
	editCmd.Flags().StringVar(&editCategory, "category", "", "Category: Work, Personal or Other")
	editCmd.Flags().StringVar(&editRecurrence, "recurrence", "", "Recurrence: none, daily, weekly, monthly or custom")
	editCmd.Flags().IntVar(&editInterval, "interval", 1, "Recurrence interval (with --recurrence custom)")
	editCmd.Flags().StringVar(&editSetDays, "set-days", "", "Comma-separated recurrence weekdays to switch on (0-6, Sunday=0)")
	editCmd.Flags().StringVar(&editUnsetDays, "unset-days", "", "Comma-separated recurrence weekdays to switch off (0-6, Sunday=0)")
	editCmd.Flags().BoolVar(&editYes, "yes", false, "Save without asking when the event conflicts")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

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

	ev, ok := st.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "no event with id %q\n", id)
		os.Exit(1)
	}

	f := form.Edit(ev)

	if cmd.Flags().Changed("title") {
		f.Apply(form.SetTitle{Value: editTitle})
	}
	if cmd.Flags().Changed("description") {
		f.Apply(form.SetDescription{Value: editDescription})
	}
	if cmd.Flags().Changed("start") {
		f.Apply(form.SetStart{Value: editStart})
	}
	if cmd.Flags().Changed("end") {
		f.Apply(form.SetEnd{Value: editEnd})
	}
	if cmd.Flags().Changed("category") {
		c, cerr := model.ParseCategory(editCategory)
		if cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
			os.Exit(1)
		}
		f.Apply(form.SetCategory{Value: c})
	}
	if cmd.Flags().Changed("recurrence") {
		r, rerr := model.ParseRecurrenceType(editRecurrence)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, rerr)
			os.Exit(1)
		}
		f.Apply(form.SetRecurrenceType{Value: r})
	}
	if cmd.Flags().Changed("interval") {
		f.Apply(form.SetRecurrenceInterval{Value: editInterval})
	}
	if editSetDays != "" {
		days, derr := parseDays(editSetDays)
		if derr != nil {
			fmt.Fprintln(os.Stderr, derr)
			os.Exit(1)
		}
		for _, d := range days {
			f.Apply(form.ToggleRecurrenceDay{Day: d, On: true})
		}
	}
	if editUnsetDays != "" {
		days, derr := parseDays(editUnsetDays)
		if derr != nil {
			fmt.Fprintln(os.Stderr, derr)
			os.Exit(1)
		}
		for _, d := range days {
			f.Apply(form.ToggleRecurrenceDay{Day: d, On: false})
		}
	}

	updated, saved := submitForm(f, st, editYes)
	if !saved {
		return nil
	}

	fmt.Printf("Updated event %q  %s %s\n",
		updated.Title, updated.Start.Format("2006-01-02"), timeutil.FormatRange(updated.Start, updated.End))
	return nil
}
