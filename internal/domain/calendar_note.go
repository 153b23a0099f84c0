package domain

import "time"

// CalendarNote é uma anotação livre exibida no calendário junto aos follow-ups
type CalendarNote struct {
	ID   int       `json:"id"`
	Note string    `json:"note"`
	Date time.Time `json:"date"`
}
