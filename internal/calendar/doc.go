// Package calendar computes free time in a day's work window from the busy
// events a calendar query tool reports.
//
// The pipeline is fetch, normalize, compute:
//
//	src := calendar.NewGogSource(external.NewExecRunner(), "gog")
//	checker := &calendar.Checker{Source: src, Logger: logging.DefaultLogger()}
//	result, err := checker.Check(ctx, calendar.Query{
//	    CalendarID:  "someone@example.com",
//	    Day:         day,
//	    MinDuration: 30 * time.Minute,
//	    StartHour:   12,
//	    EndHour:     17,
//	    Location:    loc,
//	})
//
// FindFreeSlots is a pure function and can be used on its own.
package calendar
