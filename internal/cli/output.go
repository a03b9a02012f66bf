package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"itinera/internal/apiclient"
	"itinera/internal/model"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

// render writes v as JSON or YAML, or through pretty. A nil pretty falls back to JSON.
func render(w io.Writer, format string, v any, pretty func(io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		// Round-trip through JSON so YAML keys follow the json tags.
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		if pretty == nil {
			return render(w, formatJSON, v, nil)
		}
		return pretty(w)
	}
}

func printHealth(w io.Writer, h map[string]any) error {
	fmt.Fprintf(w, "Status:  %v\n", h["status"])
	if s, ok := h["service"]; ok {
		fmt.Fprintf(w, "Service: %v\n", s)
	}
	if v, ok := h["version"]; ok {
		fmt.Fprintf(w, "Version: %v\n", v)
	}
	if eps, ok := h["endpoints"].(map[string]any); ok && len(eps) > 0 {
		names := make([]string, 0, len(eps))
		for k := range eps {
			names = append(names, k)
		}
		sort.Strings(names)
		fmt.Fprintln(w, "Endpoints:")
		for _, k := range names {
			fmt.Fprintf(w, "  %-12s %v\n", k, eps[k])
		}
	}
	return nil
}

func printItinerary(w io.Writer, it *model.ItineraryResponse) error {
	fmt.Fprintf(w, "%s → %s (%d days)\n", it.HomeCity, it.DestinationCity, it.NumDays)
	if len(it.Days) == 0 {
		fmt.Fprintln(w, "(no itinerary generated)")
	}
	for _, d := range it.Days {
		fmt.Fprintf(w, "\nDay %d: %s\n", d.Day, d.Summary)
		for _, e := range d.Entities {
			if e.Speciality != "" {
				fmt.Fprintf(w, "  • %s: %s\n", e.Name, e.Speciality)
			} else {
				fmt.Fprintf(w, "  • %s\n", e.Name)
			}
			for _, p := range e.PlacesToVisit {
				fmt.Fprintf(w, "      - %s\n", p.Name)
			}
		}
		if d.RouteInfo != nil {
			fmt.Fprintf(w, "  Route: %s\n", *d.RouteInfo)
		}
	}
	if len(it.OverallTips) > 0 {
		fmt.Fprintln(w, "\nTips:")
		for _, t := range it.OverallTips {
			fmt.Fprintf(w, "  - %s\n", t)
		}
	}
	return nil
}

func printOptions(w io.Writer, r *model.TravelOptionsResponse) error {
	fmt.Fprintf(w, "%s → %s\n", r.OriginCity, r.DestinationCity)
	if len(r.Modes) == 0 {
		fmt.Fprintln(w, "(no travel options found)")
	}
	for _, m := range r.Modes {
		fmt.Fprintf(w, "\n[%s]\n", m.Mode)
		for _, o := range m.Options {
			fmt.Fprintf(w, "  %s\n", o.RouteName)
			if len(o.Carriers) > 0 {
				fmt.Fprintf(w, "    carriers: %s\n", strings.Join(o.Carriers, ", "))
			}
			printOpt(w, "duration", o.Duration)
			printOpt(w, "price", o.Price)
			printOpt(w, "frequency", o.Frequency)
		}
	}
	return nil
}

func printFood(w io.Writer, r *model.FoodOptionsResponse) error {
	fmt.Fprintf(w, "Food in %s\n", r.City)
	if len(r.Outlets) == 0 {
		fmt.Fprintln(w, "(no outlets found)")
	}
	for _, o := range r.Outlets {
		fmt.Fprintf(w, "  • %s\n", o.Name)
		printOpt(w, "cuisine", o.Cuisine)
		printOpt(w, "price", o.PriceLevel)
		printOpt(w, "area", o.AreaOrNeighborhood)
	}
	return nil
}

func printSummary(w io.Writer, path string, s apiclient.Summary) error {
	fmt.Fprintln(w, "Travel plan generated successfully!")
	fmt.Fprintf(w, "  • Itinerary Days: %d\n", s.ItineraryDays)
	fmt.Fprintf(w, "  • Travel Routes:  %d\n", s.TravelRoutes)
	fmt.Fprintf(w, "  • Food Outlets:   %d\n", s.FoodOutlets)
	fmt.Fprintf(w, "Saved to: %s\n", path)
	return nil
}

func printOpt(w io.Writer, label string, v *string) {
	if v != nil && *v != "" {
		fmt.Fprintf(w, "    %s: %s\n", label, *v)
	}
}
