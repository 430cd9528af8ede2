package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/divya20032004/custom-event-calendar/internal/form"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
)

// confirm asks a yes/no question on stdout and reads the answer from stdin.
// Anything other than y/yes counts as no.
func confirm(question string) bool {
	fmt.Printf("%s (y/N): ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// submitForm runs the save flow for add and edit: validation, conflict
// evaluation and, on a soft conflict, the override prompt. It returns the
// stored event and whether a save actually happened.
func submitForm(f *form.Form, st *store.Store, assumeYes bool) (model.Event, bool) {
	res, err := f.Submit(st)
	if err != nil {
		var vErr *form.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintln(os.Stderr, vErr)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if res.Status == form.Saved {
		return res.Event, true
	}

	req := res.Confirmation
	fmt.Println("This event conflicts with:")
	for _, c := range req.Conflicts {
		fmt.Printf("  %s  %s  %s\n",
			c.Start.Format("2006-01-02"), timeutil.FormatRange(c.Start, c.End), c.Title)
	}
	if !assumeYes && !confirm("Save anyway?") {
		req.Decline()
		fmt.Println("Not saved.")
		return model.Event{}, false
	}

	ev, err := req.Confirm()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return ev, true
}

// parseDays parses a comma-separated weekday list like "1,3,5" (Sunday=0).
func parseDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %q (expected 0-6, Sunday=0)", part)
		}
		days = append(days, d)
	}
	return days, nil
}

// shortID abbreviates a uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
