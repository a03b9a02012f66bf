// Package thinking renders the scripted "planner is thinking" sequence shown while an itinerary is generated.
package thinking

import (
	"context"
	"fmt"
	"io"
	"time"
)

type Step struct {
	Title       string
	Description string
}

// DefaultSteps is the script shown by the chat command.
var DefaultSteps = []Step{
	{Title: "Understanding your request", Description: "Reading origin, destination, trip length and interests from your message."},
	{Title: "Researching the destination", Description: "Looking at neighborhoods, landmarks and seasonal considerations."},
	{Title: "Clustering places", Description: "Grouping nearby sights so each day has minimal backtracking."},
	{Title: "Balancing the days", Description: "Mixing must-see attractions with local gems and food stops."},
	{Title: "Finalizing the itinerary", Description: "Writing day summaries, travel tips and photo ideas."},
}

type Config struct {
	// TypingSpeed is the delay between revealed characters.
	TypingSpeed time.Duration
	// MinDisplay is how long a fully typed step stays current.
	MinDisplay time.Duration
	// CompletionDelay is the pause after all steps are marked done.
	CompletionDelay time.Duration
	// PollInterval is how often the result is checked after the last step.
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		TypingSpeed:     10 * time.Millisecond,
		MinDisplay:      2 * time.Second,
		CompletionDelay: 800 * time.Millisecond,
		PollInterval:    500 * time.Millisecond,
	}
}

type Animator struct {
	steps []Step
	cfg   Config
}

func New(steps []Step, cfg Config) *Animator {
	return &Animator{steps: steps, cfg: cfg}
}

// Run plays every step to w, then waits until ready is closed (a nil channel counts as ready).
// It returns ctx.Err() as soon as ctx is cancelled.
func (a *Animator) Run(ctx context.Context, w io.Writer, ready <-chan struct{}) error {
	total := len(a.steps)
	for i, step := range a.steps {
		fmt.Fprintf(w, "[%d/%d] %s\n    ", i+1, total, step.Title)
		for _, r := range step.Description {
			if err := sleep(ctx, a.cfg.TypingSpeed); err != nil {
				fmt.Fprintln(w)
				return err
			}
			fmt.Fprint(w, string(r))
		}
		fmt.Fprintln(w)
		if err := sleep(ctx, a.cfg.MinDisplay); err != nil {
			return err
		}
	}

	for ready != nil && !closed(ready) {
		if err := sleep(ctx, a.cfg.PollInterval); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "✓ %d/%d steps complete\n", total, total)
	return sleep(ctx, a.cfg.CompletionDelay)
}

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
