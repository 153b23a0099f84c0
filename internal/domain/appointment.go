// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Situações possíveis de um appuntamento
const (
	AppointmentStatusConcluded   = "concluded"
	AppointmentStatusToRecall    = "to_recall"
	AppointmentStatusDoNotRecall = "do_not_recall"
)

// Tipologias de appuntamento
const (
	AppointmentTypeAssistance    = "assistance"
	AppointmentTypeDemonstration = "demonstration"
)

type Appointment struct {
	ID                   int        `json:"id"`
	ClientName           string     `json:"client_name"`
	Address              string     `json:"address"`
	PhoneNumber          string     `json:"phone_number"`
	Notes                string     `json:"notes"`
	Type                 string     `json:"type"`
	Status               string     `json:"status"`
	CollectedNames       int        `json:"collected_names"`
	PersonalAppointments int        `json:"personal_appointments"`
	Sold                 bool       `json:"sold"`
	Date                 time.Time  `json:"date"`
	RecallDate           *time.Time `json:"recall_date"`
	ConsultantIDs        []int      `json:"consultant_ids"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type UpdateAppointmentRequest struct {
	ID                   int        `json:"id"`
	ClientName           *string    `json:"client_name"`
	Address              *string    `json:"address"`
	PhoneNumber          *string    `json:"phone_number"`
	Notes                *string    `json:"notes"`
	Type                 *string    `json:"type"`
	Status               *string    `json:"status"`
	CollectedNames       *int       `json:"collected_names"`
	PersonalAppointments *int       `json:"personal_appointments"`
	RecallDate           *time.Time `json:"recall_date"`
	ConsultantIDs        []int      `json:"consultant_ids"`
}

// SaleEvent é o fato imutável produzido quando um appuntamento é marcado como vendido.
// É apenas consumido para gerar a cadeia de follow-ups, nunca alterado.
type SaleEvent struct {
	AppointmentID int       `json:"appointment_id"`
	ClientName    string    `json:"client_name"`
	SaleDate      time.Time `json:"sale_date"`
	Sold          bool      `json:"sold"`
}

// AppointmentStats agrega números de desempenho de um consultor
type AppointmentStats struct {
	Total          int     `json:"total"`
	Sold           int     `json:"sold"`
	ConversionRate float64 `json:"conversion_rate"`
	Assistance     int     `json:"assistance"`
	Demonstration  int     `json:"demonstration"`
}
