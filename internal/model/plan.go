package model

import (
	"strings"
	"time"
)

// TravelPlan is a user-saved trip outline.
type TravelPlan struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      float64  `json:"budget"`
	Interests   []string `json:"interests"`
}

func (p *TravelPlan) Normalize() {
	p.Destination = strings.TrimSpace(p.Destination)
	p.Interests = orEmpty(p.Interests)
}

func (p *TravelPlan) Validate() error {
	if p.Destination == "" {
		return invalid("destination", "is required")
	}
	if p.Duration <= 0 {
		return invalid("duration", "must be positive")
	}
	if p.Budget < 0 {
		return invalid("budget", "must not be negative")
	}
	return nil
}

type TravelPlanRecord struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Duration    int       `json:"duration"`
	Budget      float64   `json:"budget"`
	Interests   []string  `json:"interests"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type Destination struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

func (d *Destination) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", "is required")
	}
	if strings.TrimSpace(d.Country) == "" {
		return invalid("country", "is required")
	}
	return nil
}

// User is an account payload.
type User struct {
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Preferences map[string]any `json:"preferences"`
}

func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	if u.Preferences == nil {
		u.Preferences = map[string]any{}
	}
}

func (u *User) Validate() error {
	if u.Name == "" {
		return invalid("name", "is required")
	}
	if u.Email == "" {
		return invalid("email", "is required")
	}
	return nil
}

type UserRecord struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Preferences map[string]any `json:"preferences"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Profile is the current account as shown on the profile page.
type Profile struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Preferences map[string]any `json:"preferences"`
}
