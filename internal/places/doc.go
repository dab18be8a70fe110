// Package places searches for meeting venues with the goplaces CLI.
//
// A search maps a venue type to a query phrase, runs the external tool,
// parses its numbered text blocks into Venue records, and ranks them by
// rating. Fetch failures follow the caller's external.Policy.
package places
