package domain

import "time"

type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Venue          string    `json:"venue"`
	Price          int64     `json:"price"`
	CPDPoints      int       `json:"cpd_points"`
	TargetAudience string    `json:"target_audience"`
	EventDate      time.Time `json:"event_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsFree reports whether bookings for the event skip the payment flow.
func (e *Event) IsFree() bool {
	return e.Price == 0
}

type CreateEventInput struct {
	Title          string
	Description    string
	Venue          string
	Price          int64
	CPDPoints      int
	TargetAudience string
	EventDate      time.Time
}
