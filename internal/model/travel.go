package model

import "strings"

type TravelOptionsRequest struct {
	OriginCity      string  `json:"origin_city"`
	DestinationCity string  `json:"destination_city"`
	RecencyFilter   *string `json:"recency_filter"`
}

func (r *TravelOptionsRequest) Normalize() {
	r.OriginCity = strings.TrimSpace(r.OriginCity)
	r.DestinationCity = strings.TrimSpace(r.DestinationCity)
}

func (r *TravelOptionsRequest) Validate() error {
	if r.OriginCity == "" {
		return invalid("origin_city", "is required")
	}
	if r.DestinationCity == "" {
		return invalid("destination_city", "is required")
	}
	return nil
}

type TravelSource struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
	Date  *string `json:"date,omitempty"`
}

// TravelOption is one routing alternative between two cities.
type TravelOption struct {
	RouteName          string         `json:"route_name"`
	Carriers           []string       `json:"carriers"`
	Duration           *string        `json:"duration,omitempty"`
	Price              *string        `json:"price,omitempty"`
	Frequency          *string        `json:"frequency,omitempty"`
	AirportsOrStations []string       `json:"airports_or_stations"`
	Transfers          *string        `json:"transfers,omitempty"`
	BookingTips        *string        `json:"booking_tips,omitempty"`
	Sources            []TravelSource `json:"sources"`
}

// TravelMode groups options by transport mode (train, bus, flight, ...).
type TravelMode struct {
	Mode    string         `json:"mode"`
	Options []TravelOption `json:"options"`
}

type TravelOptionsResponse struct {
	OriginCity      string       `json:"origin_city"`
	DestinationCity string       `json:"destination_city"`
	Modes           []TravelMode `json:"modes"`
}

func (r *TravelOptionsResponse) Sanitize() {
	r.Modes = orEmpty(r.Modes)
	for i := range r.Modes {
		m := &r.Modes[i]
		m.Options = orEmpty(m.Options)
		for j := range m.Options {
			o := &m.Options[j]
			o.Carriers = orEmpty(o.Carriers)
			o.AirportsOrStations = orEmpty(o.AirportsOrStations)
			o.Sources = orEmpty(o.Sources)
		}
	}
}
