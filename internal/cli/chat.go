package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"itinera/internal/model"
	"itinera/internal/thinking"
	"itinera/internal/tripquery"
)

const stoppedMessage = "Generation stopped by user."

// thinkingConfig paces the animation; tests shorten it.
var thinkingConfig = thinking.DefaultConfig()

func (a *app) chatCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   `chat "<trip request>"`,
		Short: "Plan a trip from a free-text request",
		Example: `  itinera chat "Plan a trip from Mumbai to Goa for 3 days"
  itinera chat "I want to visit Jaipur"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			req := tripquery.Parse(strings.Join(args, " "))
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			if quiet {
				errOut = io.Discard
			}
			fmt.Fprintf(errOut, "Planning %s → %s, %d days (%s)\n\n",
				req.HomeCity, req.DestinationCity, req.NumDays, strings.Join(req.Interests, ", "))

			it, err := a.generate(ctx, req, errOut)
			if err != nil {
				if ctx.Err() != nil {
					fmt.Fprintln(out, stoppedMessage)
					return nil
				}
				return err
			}

			result := struct {
				Query     model.ItineraryRequest   `json:"query"`
				Itinerary *model.ItineraryResponse `json:"itinerary"`
			}{req, it}
			return a.print(out, result, func(w io.Writer) error {
				fmt.Fprintln(w)
				return printItinerary(w, it)
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the thinking animation")
	return cmd
}

// generate runs the itinerary request while the animation plays on w.
// Generation with images can run for minutes, so --timeout does not apply;
// Ctrl-C cancels through ctx. A failed request stops the animation early.
func (a *app) generate(ctx context.Context, req model.ItineraryRequest, w io.Writer) (*model.ItineraryResponse, error) {
	animCtx, stopAnim := context.WithCancel(ctx)
	defer stopAnim()

	var (
		it     *model.ItineraryResponse
		reqErr error
	)
	ready := make(chan struct{})
	go func() {
		defer close(ready)
		it, reqErr = a.newClient(0).PlannerItinerary(ctx, req)
		if reqErr != nil {
			stopAnim()
		}
	}()

	animErr := thinking.New(thinking.DefaultSteps, thinkingConfig).Run(animCtx, w, ready)
	<-ready
	if reqErr != nil {
		return nil, reqErr
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if animErr != nil && !errors.Is(animErr, context.Canceled) {
		return nil, animErr
	}
	return it, nil
}
