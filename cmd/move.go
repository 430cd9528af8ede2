package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/divya20032004/custom-event-calendar/internal/conflict"
	"github.com/divya20032004/custom-event-calendar/internal/store"
	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
)

var (
	moveStart string
	moveEnd   string
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Reschedule an event to a new time range",
	Args:  cobra.ExactArgs(1),
	RunE:  runMove,
}

func init() {
	moveCmd.Flags().StringVar(&moveStart, "start", "", "New start time (YYYY-MM-DDTHH:MM, local)")
	moveCmd.Flags().StringVar(&moveEnd, "end", "", "New end time (default: start + previous duration)")
	_ = moveCmd.MarkFlagRequired("start")
}

func runMove(cmd *cobra.Command, args []string) error {
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

	start, err := timeutil.ParseLocalDateTime(moveStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --start value %q: expected YYYY-MM-DDTHH:MM\n", moveStart)
		os.Exit(1)
	}

	var end time.Time
	if moveEnd != "" {
		end, err = timeutil.ParseLocalDateTime(moveEnd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --end value %q: expected YYYY-MM-DDTHH:MM\n", moveEnd)
			os.Exit(1)
		}
	} else {
		end = start.Add(ev.End.Sub(ev.Start))
	}

	// Unlike save, a conflicting move is rejected outright; no override is
	// offered.
	eval := conflict.Evaluate(start, end, st.Events(), ev.ID)
	switch eval.Result {
	case conflict.Invalid:
		fmt.Fprintln(os.Stderr, "invalid range: end time must be after start time")
		os.Exit(1)
	case conflict.Conflict:
		fmt.Fprintln(os.Stderr, "Cannot move event: it conflicts with an existing event.")
		os.Exit(1)
	}

	moved, err := st.Move(ev.ID, start, end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Moved %q to %s %s\n",
		moved.Title, moved.Start.Format("2006-01-02"), timeutil.FormatRange(moved.Start, moved.End))
	return nil
}
