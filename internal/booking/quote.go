package booking

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultHotelPrice  = 2000
	DefaultSegmentCost = 500
	DefaultOptionCost  = 1500
	Currency           = "INR"
	ItemKindStay       = "accommodation"
	ItemKindTravel     = "travel"
)

type Stay struct {
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
}

type DayStays struct {
	Stays []Stay `json:"stays"`
}

type Segment struct {
	Mode string  `json:"mode,omitempty"`
	From string  `json:"from,omitempty"`
	To   string  `json:"to,omitempty"`
	Cost float64 `json:"cost,omitempty"`
}

type Option struct {
	Name     string    `json:"name,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

type Leg struct {
	Options []Option `json:"options"`
}

type TravelPlan struct {
	Outbound Leg `json:"outbound"`
	Return   Leg `json:"return"`
}

// QuoteRequest carries the booking catalog and the ids the user selected.
// Accommodations are keyed category -> day; stay ids are "category-day-index".
// Travel ids are indices over outbound options followed by return options.
type QuoteRequest struct {
	Accommodations         map[string]map[string]DayStays `json:"accommodations"`
	TravelOptions          TravelPlan                     `json:"travel_options"`
	SelectedAccommodations []string                       `json:"selected_accommodations"`
	SelectedTravelOptions  []string                       `json:"selected_travel_options"`
}

type QuoteItem struct {
	ID     string   `json:"id"`
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	Amount float64  `json:"amount"`
	Rating *float64 `json:"rating,omitempty"`
}

type Quote struct {
	Items              []QuoteItem `json:"items"`
	AccommodationTotal float64     `json:"accommodation_total"`
	TravelTotal        float64     `json:"travel_total"`
	Total              float64     `json:"total"`
	Currency           string      `json:"currency"`
	Formatted          string      `json:"formatted"`
}

// StayID is the selection id of the index-th stay on a category's day.
func StayID(category, day string, index int) string {
	return category + "-" + day + "-" + strconv.Itoa(index)
}

// OptionCost sums segment costs, pricing missing ones at DefaultSegmentCost.
// An option without segments costs DefaultOptionCost.
func OptionCost(o Option) float64 {
	var sum float64
	for _, s := range o.Segments {
		if s.Cost > 0 {
			sum += s.Cost
		} else {
			sum += DefaultSegmentCost
		}
	}
	if sum == 0 {
		return DefaultOptionCost
	}
	return sum
}

// Calculate totals the selected stays and travel options. Unknown ids are ignored.
func Calculate(req QuoteRequest) Quote {
	q := Quote{Items: []QuoteItem{}, Currency: Currency}

	selectedStays := toSet(req.SelectedAccommodations)
	for _, category := range sortedKeys(req.Accommodations) {
		days := req.Accommodations[category]
		for _, day := range sortedKeys(days) {
			for i, stay := range days[day].Stays {
				id := StayID(category, day, i)
				if !selectedStays[id] {
					continue
				}
				price := stay.Price
				if price <= 0 {
					price = DefaultHotelPrice
				}
				name := CleanHotelName(stay.Name)
				r := Rating(name)
				q.Items = append(q.Items, QuoteItem{ID: id, Kind: ItemKindStay, Name: name, Amount: price, Rating: &r})
				q.AccommodationTotal += price
			}
		}
	}

	selectedTravel := toSet(req.SelectedTravelOptions)
	all := append(append([]Option{}, req.TravelOptions.Outbound.Options...), req.TravelOptions.Return.Options...)
	for i, opt := range all {
		id := strconv.Itoa(i)
		if !selectedTravel[id] {
			continue
		}
		cost := OptionCost(opt)
		q.Items = append(q.Items, QuoteItem{ID: id, Kind: ItemKindTravel, Name: opt.Name, Amount: cost})
		q.TravelTotal += cost
	}

	q.Total = q.AccommodationTotal + q.TravelTotal
	q.Formatted = FormatINR(q.Total)
	return q
}

// FormatINR renders an amount with the rupee sign and Indian digit grouping, e.g. ₹1,23,456.
// Up to two fraction digits are kept; trailing zeros are dropped.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatFloat(math.Round(amount*100)/100, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		grouped = strings.Join(append(groups, tail), ",")
	}
	if frac != "" {
		grouped += "." + frac
	}
	return sign + "₹" + grouped
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[strings.TrimSpace(id)] = true
	}
	return set
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
