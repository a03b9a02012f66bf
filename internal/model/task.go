package model

import "strings"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// DestinationRequest is one destination submitted for background processing.
// Budget is in rupees; CustomIns carries free-text preferences ("vegetarian food, no clubs").
type DestinationRequest struct {
	Place     string  `json:"place"`
	Days      int     `json:"days"`
	Budget    float64 `json:"budget"`
	CustomIns string  `json:"custom_ins"`
}

func (d *DestinationRequest) Validate() error {
	if strings.TrimSpace(d.Place) == "" {
		return invalid("place", "is required")
	}
	if d.Days <= 0 {
		return invalid("days", "must be positive")
	}
	return nil
}

type DestinationResult struct {
	Place            string   `json:"place"`
	Days             int      `json:"days"`
	Budget           float64  `json:"budget"`
	Activities       []string `json:"activities"`
	Food             []string `json:"food"`
	Accommodations   []string `json:"accommodations"`
	ProcessingStatus string   `json:"processing_status"`
	Error            *string  `json:"error"`
}

// Task tracks a batch of destinations processed in the background.
type Task struct {
	TaskID       string              `json:"task_id"`
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	CreatedAt    float64             `json:"created_at"`
	Destinations []DestinationResult `json:"destinations"`
}

// Clone returns a deep copy safe to hand out while workers keep mutating the original.
func (t *Task) Clone() *Task {
	out := *t
	out.Destinations = make([]DestinationResult, len(t.Destinations))
	for i, d := range t.Destinations {
		d.Activities = append([]string{}, d.Activities...)
		d.Food = append([]string{}, d.Food...)
		d.Accommodations = append([]string{}, d.Accommodations...)
		if d.Error != nil {
			e := *d.Error
			d.Error = &e
		}
		out.Destinations[i] = d
	}
	return &out
}
