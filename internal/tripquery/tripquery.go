// Package tripquery turns a free-text chat message into an itinerary request.
package tripquery

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"itinera/internal/model"
)

const (
	DefaultOrigin      = "New Delhi"
	DefaultDestination = "Shimla"
	DefaultDays        = 5
)

// DefaultInterests are used for every parsed query.
var DefaultInterests = []string{"culture", "food", "sightseeing"}

var (
	daysRe    = regexp.MustCompile(`(?i)(\d+)\s*days?`)
	originRe  = regexp.MustCompile(`(?i)\bfrom\s+([a-z][a-z\s]*?)(?:\s+(?:to|for|in)\b|\s+\d|\s*[,.!?]|\s*$)`)
	keywordRe = regexp.MustCompile(`(?i)\b(?:visit|to|in|for)\s+`)
	placeRe   = regexp.MustCompile(`(?i)^([a-z][a-z\s]*?)(?:\s+(?:to|for|in|from)\b|\s+\d|\s*[,.!?]|\s*$)`)
)

// articles are trimmed from the front of a destination ("the Taj Mahal").
var articles = map[string]bool{"a": true, "an": true, "the": true}

// fillers never start a destination name ("go to", "for a week", "plan my trip").
var fillers = map[string]bool{
	"itinerary": true, "go": true, "me": true,
	"us": true, "my": true, "plan": true, "trip": true, "travel": true, "vacation": true,
	"holiday": true, "some": true, "few": true, "week": true, "weekend": true, "visit": true,
}

// Parse extracts origin, destination and duration from text, falling back to defaults.
func Parse(text string) model.ItineraryRequest {
	q := normalize(text)

	req := model.ItineraryRequest{
		HomeCity:        DefaultOrigin,
		DestinationCity: DefaultDestination,
		NumDays:         parseDays(q),
		Interests:       append([]string(nil), DefaultInterests...),
	}

	if m := originRe.FindStringSubmatchIndex(q); m != nil {
		if city := titleCase(q[m[2]:m[3]]); city != "" {
			req.HomeCity = city
		}
		q = normalize(q[:m[0]] + " " + q[m[3]:])
	}
	if dest := findDestination(q); dest != "" {
		req.DestinationCity = dest
	}
	return req
}

func parseDays(q string) int {
	m := daysRe.FindStringSubmatch(q)
	if m == nil {
		return DefaultDays
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return model.MaxNumDays
	}
	return min(max(n, model.MinNumDays), model.MaxNumDays)
}

func findDestination(q string) string {
	for _, loc := range keywordRe.FindAllStringIndex(q, -1) {
		m := placeRe.FindStringSubmatch(q[loc[1]:])
		if m == nil {
			continue
		}
		words := strings.Fields(m[1])
		for len(words) > 0 && articles[strings.ToLower(words[0])] {
			words = words[1:]
		}
		if len(words) == 0 || fillers[strings.ToLower(words[0])] {
			continue
		}
		return titleCase(strings.Join(words, " "))
	}
	return ""
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleCase upper-cases the first letter of each word and leaves the rest untouched.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
