package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/divya20032004/custom-event-calendar/internal/store"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete an event",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeYes, "yes", false, "Delete without asking")
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	// Deleting an absent id is a no-op, not an error.
	ev, ok := st.Get(id)
	if !ok {
		fmt.Println("No event with that id.")
		return nil
	}

	if !removeYes && !confirm(fmt.Sprintf("Delete event %q?", ev.Title)) {
		fmt.Println("Not deleted.")
		return nil
	}

	if err := st.Delete(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Deleted event %q\n", ev.Title)
	return nil
}
