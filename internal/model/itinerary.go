package model

import "strings"

const (
	DefaultNumDays   = 4
	MinNumDays       = 1
	MaxNumDays       = 14
	DefaultMaxPlaces = 8
	MinMaxPlaces     = 1
	MaxMaxPlaces     = 30
)

// ItineraryRequest asks for a day-by-day plan from a home city to a destination.
type ItineraryRequest struct {
	HomeCity        string   `json:"home_city"`
	DestinationCity string   `json:"destination_city"`
	NumDays         int      `json:"num_days"`
	Interests       []string `json:"interests"`
}

// Normalize applies defaults for omitted fields.
func (r *ItineraryRequest) Normalize() {
	r.HomeCity = strings.TrimSpace(r.HomeCity)
	r.DestinationCity = strings.TrimSpace(r.DestinationCity)
	if r.NumDays == 0 {
		r.NumDays = DefaultNumDays
	}
	r.Interests = orEmpty(r.Interests)
}

func (r *ItineraryRequest) Validate() error {
	if r.HomeCity == "" {
		return invalid("home_city", "is required")
	}
	if r.DestinationCity == "" {
		return invalid("destination_city", "is required")
	}
	if r.NumDays < MinNumDays || r.NumDays > MaxNumDays {
		return invalid("num_days", "must be between 1 and 14")
	}
	return nil
}

type ItineraryPlace struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItineraryEntity is a place or neighborhood cluster visited on a given day.
type ItineraryEntity struct {
	Name          string           `json:"name"`
	Speciality    string           `json:"speciality"`
	PlacesToVisit []ItineraryPlace `json:"places_to_visit"`
	PhotoPrompts  []string         `json:"photo_prompts"`
	ImageURLs     []string         `json:"image_urls"`
}

type ItineraryDay struct {
	Day       int               `json:"day"`
	Summary   string            `json:"summary"`
	Entities  []ItineraryEntity `json:"entities"`
	RouteInfo *string           `json:"route_info,omitempty"`
}

type ItineraryResponse struct {
	HomeCity        string         `json:"home_city"`
	DestinationCity string         `json:"destination_city"`
	NumDays         int            `json:"num_days"`
	Days            []ItineraryDay `json:"days"`
	OverallTips     []string       `json:"overall_tips"`
}

// DefaultItinerary is returned when generation fails: the request echoed with no days.
func DefaultItinerary(req ItineraryRequest) *ItineraryResponse {
	return &ItineraryResponse{
		HomeCity:        req.HomeCity,
		DestinationCity: req.DestinationCity,
		NumDays:         req.NumDays,
		Days:            []ItineraryDay{},
		OverallTips:     []string{},
	}
}

// Sanitize replaces nil slices with empty ones throughout the itinerary.
func (r *ItineraryResponse) Sanitize() {
	r.Days = orEmpty(r.Days)
	r.OverallTips = orEmpty(r.OverallTips)
	for i := range r.Days {
		d := &r.Days[i]
		d.Entities = orEmpty(d.Entities)
		for j := range d.Entities {
			e := &d.Entities[j]
			e.PlacesToVisit = orEmpty(e.PlacesToVisit)
			e.PhotoPrompts = orEmpty(e.PhotoPrompts)
			e.ImageURLs = orEmpty(e.ImageURLs)
		}
	}
}

// ItineraryPlacesRequest asks for non day-wise place cards for a destination.
type ItineraryPlacesRequest struct {
	DestinationCity string   `json:"destination_city"`
	Interests       []string `json:"interests"`
	MaxPlaces       int      `json:"max_places"`
}

func (r *ItineraryPlacesRequest) Normalize() {
	r.DestinationCity = strings.TrimSpace(r.DestinationCity)
	if r.MaxPlaces == 0 {
		r.MaxPlaces = DefaultMaxPlaces
	}
	r.Interests = orEmpty(r.Interests)
}

func (r *ItineraryPlacesRequest) Validate() error {
	if r.DestinationCity == "" {
		return invalid("destination_city", "is required")
	}
	if r.MaxPlaces < MinMaxPlaces || r.MaxPlaces > MaxMaxPlaces {
		return invalid("max_places", "must be between 1 and 30")
	}
	return nil
}

type ItineraryPlaceCard struct {
	City         string   `json:"city"`
	PlaceName    string   `json:"place_name"`
	Speciality   string   `json:"speciality"`
	Tips         []string `json:"tips"`
	PhotoPrompts []string `json:"photo_prompts"`
	ImageURLs    []string `json:"image_urls"`
}

type ItineraryPlacesResponse struct {
	DestinationCity string               `json:"destination_city"`
	Places          []ItineraryPlaceCard `json:"places"`
}

func (r *ItineraryPlacesResponse) Sanitize() {
	r.Places = orEmpty(r.Places)
	for i := range r.Places {
		p := &r.Places[i]
		p.Tips = orEmpty(p.Tips)
		p.PhotoPrompts = orEmpty(p.PhotoPrompts)
		p.ImageURLs = orEmpty(p.ImageURLs)
	}
}

// ChatResponse pairs the trip request parsed from free text with the generated itinerary.
type ChatResponse struct {
	Query     ItineraryRequest   `json:"query"`
	Itinerary *ItineraryResponse `json:"itinerary"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
