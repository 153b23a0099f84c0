package domain

import "time"

// Client é o registro de anagrafe criado a partir de um appuntamento vendido
type Client struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Address      *string   `json:"address"`
	PhoneNumber  *string   `json:"phone_number"`
	Email        *string   `json:"email"`
	Notes        *string   `json:"notes"`
	RegisteredAt time.Time `json:"registered_at"`
}
