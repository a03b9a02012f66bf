package prompt

import (
	"strconv"
	"strings"

	"itinera/internal/model"
)

// Kind names one recommendation list requested for a destination.
// The value doubles as the JSON array key the model is asked to return.
type Kind string

const (
	Activities     Kind = "activities"
	Food           Kind = "food"
	Accommodations Kind = "accommodations"
)

// Kinds lists the recommendation lists produced for each destination, in request order.
var Kinds = []Kind{Activities, Food, Accommodations}

const activitiesTemplate = `You are an expert local guide for {destination}, India. You know every popular attraction, hidden gem, and must-see location.

DESTINATION: {destination}
DURATION: {days} days
BUDGET: ₹{budget} (Indian Rupees)
CUSTOM PREFERENCES: {custom_ins}

INSTRUCTIONS:
- Return ONLY a simple object with one array called "activities"
- Each activity should be a specific, detailed recommendation like "Visit the Red Fort and explore Mughal architecture"
- Include 8-12 specific, real activities and places that actually exist in {destination}
- Make recommendations detailed and specific, not generic like "visit the city center"
- Include famous landmarks, temples, markets, museums, parks, viewpoints, etc.
- Focus on the most popular and highly-rated attractions
- Consider the duration and suggest activities that can be done in {days} days
- RESPECT USER PREFERENCES: if the custom preferences mention "vegetarian", "historic sites", "no clubs", "adventure" and similar, prioritize matching activities
- If the preferences mention food, suggest activities related to food experiences
- If the preferences mention interests like "photography", "nature", "shopping", prioritize those activities

RESPONSE FORMAT (exactly like this):
{
  "activities": [
    "Visit Amber Fort and explore the magnificent Rajputana architecture",
    "Explore City Palace and see the royal collections and courtyards",
    "Walk through Hawa Mahal and photograph the unique pink sandstone facade",
    "Shop at Johari Bazaar for traditional jewelry and textiles"
  ]
}`

const foodTemplate = `You are a local food expert and restaurant critic in {destination}, India. You know the best places to eat, famous dishes, and hidden food gems.

DESTINATION: {destination}
BUDGET: ₹{budget} for food and dining
CUSTOM PREFERENCES: {custom_ins}

INSTRUCTIONS:
- Return ONLY a simple object with one array called "food"
- Each food recommendation should be specific and detailed like "Try Dal Baati Churma at Chokhi Dhani restaurant"
- Include 8-12 specific, real restaurants and dishes that actually exist in {destination}
- Make recommendations detailed and specific, not generic like "eat local food"
- Include famous restaurants, street food stalls, local eateries, and must-try dishes
- Consider the budget and suggest affordable options
- RESPECT USER PREFERENCES: if the custom preferences mention "vegetarian", "non-veg", "spicy food", "street food only", "fine dining" and similar, prioritize those
- If the preferences mention dietary restrictions, suggest appropriate restaurants

RESPONSE FORMAT (exactly like this):
{
  "food": [
    "Try authentic Laal Maas at Handi Restaurant in C-Scheme",
    "Eat Dal Baati Churma at Rawat Mishthan Bhandar near Railway Station",
    "Have Pyaaz Kachori at Rawat Sweets in Johari Bazaar",
    "Try street food at Bapu Bazaar food stalls"
  ]
}`

const accommodationsTemplate = `You are a local accommodation expert in {destination}, India. You know the best hotels, guesthouses, and places to stay.

DESTINATION: {destination}
DURATION: {days} days
BUDGET: ₹{budget} for accommodation (per night average)
CUSTOM PREFERENCES: {custom_ins}

INSTRUCTIONS:
- Return ONLY a simple object with one array called "accommodations"
- Each accommodation should be specific and detailed like "Stay at Taj Rambagh Palace for luxury experience"
- Include 6-10 specific, real hotels and guesthouses that actually exist in {destination}
- Include luxury hotels, mid-range options, budget guesthouses, and boutique properties
- Include the areas where these accommodations are located
- Consider the budget and suggest appropriate price ranges
- RESPECT USER PREFERENCES: if the custom preferences mention "luxury", "budget", "family-friendly", "heritage", "pool", "spa" and similar, prioritize those

RESPONSE FORMAT (exactly like this):
{
  "accommodations": [
    "Stay at Taj Rambagh Palace for a luxurious heritage experience",
    "Book at Hotel Pearl Palace for budget-friendly heritage stay",
    "Check into Alsisar Haveli for authentic Rajasthani hospitality",
    "Book at Madhav Guest House for affordable and clean accommodation"
  ]
}`

var templates = map[Kind]string{
	Activities:     activitiesTemplate,
	Food:           foodTemplate,
	Accommodations: accommodationsTemplate,
}

// Destination renders the free-text prompt for one recommendation kind.
func Destination(kind Kind, d model.DestinationRequest) string {
	r := strings.NewReplacer(
		"{destination}", d.Place,
		"{days}", strconv.Itoa(d.Days),
		"{budget}", strconv.FormatFloat(d.Budget, 'f', -1, 64),
		"{custom_ins}", d.CustomIns,
	)
	return r.Replace(templates[kind])
}
