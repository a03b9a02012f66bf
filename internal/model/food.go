package model

import "strings"

type FoodOptionsRequest struct {
	City               string   `json:"city"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	PriceLevel         *string  `json:"price_level"`
	RecencyFilter      *string  `json:"recency_filter"`
}

func (r *FoodOptionsRequest) Normalize() {
	r.City = strings.TrimSpace(r.City)
	r.CuisinePreferences = orEmpty(r.CuisinePreferences)
}

func (r *FoodOptionsRequest) Validate() error {
	if r.City == "" {
		return invalid("city", "is required")
	}
	return nil
}

type FoodOutlet struct {
	Name               string   `json:"name"`
	Cuisine            *string  `json:"cuisine,omitempty"`
	PriceLevel         *string  `json:"price_level,omitempty"`
	AreaOrNeighborhood *string  `json:"area_or_neighborhood,omitempty"`
	Highlights         []string `json:"highlights"`
	BookingTips        *string  `json:"booking_tips,omitempty"`
	SourceURL          *string  `json:"source_url,omitempty"`
}

type FoodOptionsResponse struct {
	City    string       `json:"city"`
	Outlets []FoodOutlet `json:"outlets"`
}

func (r *FoodOptionsResponse) Sanitize() {
	r.Outlets = orEmpty(r.Outlets)
	for i := range r.Outlets {
		r.Outlets[i].Highlights = orEmpty(r.Outlets[i].Highlights)
	}
}
