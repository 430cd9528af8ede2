// Package ics converts between the event model and the iCalendar format
// used by the export and import commands.
package ics

import (
	"fmt"
	"io"

	ical "github.com/arran4/golang-ical"

	"github.com/divya20032004/custom-event-calendar/internal/model"
)

const prodID = "-//custom-event-calendar//cec//EN"

// Encode renders the events as a VCALENDAR document.
func Encode(events []model.Event) string {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ical.MethodPublish)

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetSummary(ev.Title)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		ve.SetProperty(ical.ComponentPropertyCategories, string(ev.Category))
	}

	return cal.Serialize()
}

// Parse reads a VCALENDAR document into event drafts. VEVENTs without a
// usable time range are skipped with an error counted by the caller via the
// returned skipped counter. The VEVENT UID becomes the draft's ImportUID so
// re-importing the same file stays idempotent.
func Parse(r io.Reader, defaultCategory model.Category) (drafts []model.Draft, skipped int, err error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing calendar: %w", err)
	}

	for _, ve := range cal.Events() {
		d, perr := parseVEvent(ve, defaultCategory)
		if perr != nil {
			skipped++
			continue
		}
		drafts = append(drafts, d)
	}
	return drafts, skipped, nil
}

func parseVEvent(ve *ical.VEvent, defaultCategory model.Category) (model.Draft, error) {
	var d model.Draft

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return d, fmt.Errorf("missing UID")
	}
	d.ImportUID = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		d.Title = p.Value
	}
	if d.Title == "" {
		return d, fmt.Errorf("missing SUMMARY")
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		d.Description = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return d, fmt.Errorf("reading DTSTART: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return d, fmt.Errorf("reading DTEND: %w", err)
	}
	if !start.Before(end) {
		return d, fmt.Errorf("event does not end after it starts")
	}
	d.Start = start
	d.End = end

	d.Category = defaultCategory
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		if c, cerr := model.ParseCategory(p.Value); cerr == nil {
			d.Category = c
		}
	}
	d.RecurrenceType = model.RecurrenceNone

	return d, nil
}
