package prompt

import (
	"fmt"

	"google.golang.org/genai"

	"itinera/internal/model"
)

const ItinerarySystem = `You are an expert travel planner generating personalized, end-to-end itineraries.

Objective:
- Create a realistic, locally-aware itinerary that is safe, seasonally appropriate, and logistically feasible.
- Optimize for minimal backtracking and sensible geographic clustering of nearby sights.
- Balance must-see attractions with local hidden gems and food.

Requirements:
- Assume travel starts from the home city and ends at the destination city.
- Break down the plan day-by-day.
- Each "entity" in a day should be a place or neighborhood cluster with:
  - name (string)
  - speciality: 1-2 sentence unique hook
  - places_to_visit: 3-6 notable sights, venues, or activities inside/near the entity
  - photo_prompts: 1-3 concise, concrete prompts to generate representative photos
- Include a short summary per day and optional route_info when helpful.

Constraints:
- Be precise on neighborhood names and landmark spellings.
- Avoid copyrighted brand imagery in photo prompts; describe scenes generically.
- No hallucinated transport where none exists.
- Avoid recommending illegal or unsafe activities.

Photo prompt guidance:
- Describe composition, time of day, ambiance, and landmarks.
- Prefer: "Golden-hour skyline view from Brooklyn Bridge with pedestrians and skyline bokeh" over generic prompts.
- Avoid people close-ups or recognizable faces.
- Write prompts about a particular place rather than a general view of the day's itinerary.

Return only content that fits the provided structured schema.`

const PlacesSystem = `You are an expert travel curator. Produce a non-day-wise list of place cards
for a destination city. Each card must be self-contained and include:
- city
- place_name (specific landmark, neighborhood, or venue)
- speciality: 1-2 sentences about what makes it compelling
- tips: 3-6 concise, practical visitor tips (best time, tickets, lines, safety, local hacks)
- photo_prompts: 1-2 specific prompts to generate representative images (no faces, no brands)

Rules:
- Balance must-see icons with a few local gems across neighborhoods.
- Cluster nearby suggestions implicitly by choosing varied areas.
- Avoid generic text like "beautiful view"; be concrete and locally aware.
- Prefer prompts specific to the place's unique composition.`

// Itinerary builds the user turn for a day-by-day plan.
func Itinerary(req model.ItineraryRequest) string {
	return fmt.Sprintf("Home: %s\nDestination: %s\nDays: %d\nInterests: %s\nGenerate an end-to-end itinerary as per schema.",
		req.HomeCity, req.DestinationCity, req.NumDays, joinOr(req.Interests, "general"))
}

// Places builds the user turn for place cards.
func Places(req model.ItineraryPlacesRequest) string {
	return fmt.Sprintf("Destination: %s\nInterests: %s\nMax places: %d\nReturn concise place cards as per schema.",
		req.DestinationCity, joinOr(req.Interests, "general"), req.MaxPlaces)
}

// ItinerarySchema mirrors model.ItineraryResponse.
func ItinerarySchema() *genai.Schema {
	place := object([]string{"name", "description"}, map[string]*genai.Schema{
		"name":        str(),
		"description": str(),
	})
	entity := object([]string{"name", "speciality", "places_to_visit", "photo_prompts"}, map[string]*genai.Schema{
		"name":            str(),
		"speciality":      str(),
		"places_to_visit": arrayOf(place),
		"photo_prompts":   arrayOf(str()),
	})
	day := object([]string{"day", "summary", "entities"}, map[string]*genai.Schema{
		"day":        integer(),
		"summary":    str(),
		"route_info": str(),
		"entities":   arrayOf(entity),
	})
	return object([]string{"home_city", "destination_city", "num_days", "days"}, map[string]*genai.Schema{
		"home_city":        str(),
		"destination_city": str(),
		"num_days":         integer(),
		"days":             arrayOf(day),
		"overall_tips":     arrayOf(str()),
	})
}

// PlacesSchema mirrors model.ItineraryPlacesResponse.
func PlacesSchema() *genai.Schema {
	card := object([]string{"city", "place_name", "speciality", "tips", "photo_prompts"}, map[string]*genai.Schema{
		"city":          str(),
		"place_name":    str(),
		"speciality":    str(),
		"tips":          arrayOf(str()),
		"photo_prompts": arrayOf(str()),
	})
	return object([]string{"destination_city", "places"}, map[string]*genai.Schema{
		"destination_city": str(),
		"places":           arrayOf(card),
	})
}
