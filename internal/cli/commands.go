package cli

import (
	"io"

	"github.com/spf13/cobra"

	"itinera/internal/model"
)

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show the API's detailed health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.client().Health(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), h, func(w io.Writer) error { return printHealth(w, h) })
		},
	}
}

// tripFlags are shared by itinerary and plan.
type tripFlags struct {
	from      string
	to        string
	days      int
	interests []string
}

func (f *tripFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Home city")
	cmd.Flags().StringVar(&f.to, "to", "", "Destination city")
	cmd.Flags().IntVar(&f.days, "days", model.DefaultNumDays, "Trip length in days (1-14)")
	cmd.Flags().StringSliceVar(&f.interests, "interest", nil, "Interest, repeatable or comma separated")
}

func (f *tripFlags) request() model.ItineraryRequest {
	req := model.ItineraryRequest{
		HomeCity:        f.from,
		DestinationCity: f.to,
		NumDays:         f.days,
		Interests:       f.interests,
	}
	req.Normalize()
	return req
}

func (a *app) itineraryCmd() *cobra.Command {
	var f tripFlags
	cmd := &cobra.Command{
		Use:   "itinerary",
		Short: "Generate a day-by-day itinerary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it, err := a.client().Itinerary(cmd.Context(), f.request())
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), it, func(w io.Writer) error { return printItinerary(w, it) })
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) optionsCmd() *cobra.Command {
	var req model.TravelOptionsRequest
	var recency string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Find train, bus and flight options between two cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if recency != "" {
				req.RecencyFilter = &recency
			}
			resp, err := a.client().TravelOptions(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) error { return printOptions(w, resp) })
		},
	}
	cmd.Flags().StringVar(&req.OriginCity, "from", "", "Origin city")
	cmd.Flags().StringVar(&req.DestinationCity, "to", "", "Destination city")
	cmd.Flags().StringVar(&recency, "recency", "", "Search recency filter: day|week|month|year")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) foodCmd() *cobra.Command {
	var req model.FoodOptionsRequest
	var price string
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Find restaurants and street food in a city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if price != "" {
				req.PriceLevel = &price
			}
			req.Normalize()
			resp, err := a.client().FoodOptions(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp, func(w io.Writer) error { return printFood(w, resp) })
		},
	}
	cmd.Flags().StringVar(&req.City, "city", "", "City")
	cmd.Flags().StringSliceVar(&req.CuisinePreferences, "cuisine", nil, "Cuisine preference, repeatable")
	cmd.Flags().StringVar(&price, "price", "", "Price level: budget|mid-range|premium")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}
