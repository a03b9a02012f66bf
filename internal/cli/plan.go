package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"itinera/internal/apiclient"
	"itinera/internal/model"
)

// presets are ready-made trips for trying the API end to end.
var presets = map[string]model.ItineraryRequest{
	"short": {
		HomeCity: "Bangalore", DestinationCity: "Mysore", NumDays: 2,
		Interests: []string{"temples", "palaces", "local food"},
	},
	"medium": {
		HomeCity: "Mumbai", DestinationCity: "Goa", NumDays: 4,
		Interests: []string{"beaches", "nightlife", "seafood", "water sports"},
	},
	"long": {
		HomeCity: "Chennai", DestinationCity: "Kerala", NumDays: 7,
		Interests: []string{"backwaters", "hill stations", "ayurveda", "cultural shows"},
	},
}

// routePause spaces out travel option lookups; tests shorten it.
var routePause = 500 * time.Millisecond

func (a *app) planCmd() *cobra.Command {
	var f tripFlags
	var preset, output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a full travel plan and save it as JSON",
		Long: `Checks API health, generates an itinerary, looks up travel options for every
city pair in it and food options for the destination, then writes the combined
plan to <output>/travel-plan-<unix-ms>.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := planRequest(f, preset)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c := a.client(apiclient.WithRoutePause(routePause))

			if _, err := c.Health(ctx); err != nil {
				return fmt.Errorf("API is not available at %s: %w", a.v.GetString("api-url"), err)
			}

			plan, err := c.ExecuteTravelPlan(ctx, req)
			if err != nil {
				return err
			}
			path, err := apiclient.SavePlan(a.fs, output, plan, time.Now())
			if err != nil {
				return err
			}
			a.log.Debug("plan saved", zap.String("path", path))

			out := struct {
				Path    string            `json:"path"`
				Summary apiclient.Summary `json:"summary"`
			}{path, plan.Summary()}
			return a.print(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return printSummary(w, path, out.Summary)
			})
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&preset, "preset", "", "Use a sample trip: "+strings.Join(presetNames(), "|"))
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Directory for the saved plan")
	return cmd
}

// planRequest prefers explicit --from/--to over a preset.
func planRequest(f tripFlags, preset string) (model.ItineraryRequest, error) {
	if preset != "" && f.from == "" && f.to == "" {
		req, ok := presets[preset]
		if !ok {
			return model.ItineraryRequest{}, fmt.Errorf("unknown preset %q (want %s)", preset, strings.Join(presetNames(), "|"))
		}
		req.Interests = append([]string(nil), req.Interests...)
		return req, nil
	}
	req := f.request()
	if err := req.Validate(); err != nil {
		return model.ItineraryRequest{}, err
	}
	return req, nil
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
