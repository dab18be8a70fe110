package places

import (
	"regexp"
	"strings"
)

// venueHeader matches "1. Name — Address".
var venueHeader = regexp.MustCompile(`^\d+\.\s+(.+?)\s+—\s+(.+)$`)

type parserState int

const (
	stateNoCurrent parserState = iota
	stateAccumulating
)

type venueParser struct {
	state   parserState
	current Venue
	venues  []Venue
}

// ParseVenues reads the search tool's output. Each numbered header line
// starts a venue; the field lines that follow attach to it until the next
// header or the end of input. Unrecognized lines are ignored.
func ParseVenues(text string) []Venue {
	p := &venueParser{venues: []Venue{}}
	for _, line := range strings.Split(text, "\n") {
		p.feed(strings.TrimSpace(line))
	}
	p.flush()
	return p.venues
}

func (p *venueParser) feed(line string) {
	if line == "" {
		return
	}

	if m := venueHeader.FindStringSubmatch(line); m != nil {
		p.flush()
		p.current = Venue{Name: m[1], Address: m[2]}
		p.state = stateAccumulating
		return
	}

	if p.state != stateAccumulating {
		return
	}

	switch {
	case strings.HasPrefix(line, "ID:"):
		if v, ok := fieldValue(line); ok {
			p.current.PlaceID = v
		}
	case strings.HasPrefix(line, "Rating:"):
		if v, ok := fieldValue(line); ok {
			p.current.Rating = v
		}
	case strings.HasPrefix(line, "Types:"):
		if v, ok := fieldValue(line); ok {
			p.current.Types = v
		}
	case strings.HasPrefix(line, "Open now:"):
		if v, ok := fieldValue(line); ok {
			open := v == "yes"
			p.current.OpenNow = &open
		}
	}
}

func (p *venueParser) flush() {
	if p.state == stateAccumulating {
		p.venues = append(p.venues, p.current)
	}
	p.current = Venue{}
	p.state = stateNoCurrent
}

func fieldValue(line string) (string, bool) {
	_, value, ok := strings.Cut(line, ": ")
	return value, ok
}
