package domain

import "time"

// FollowUp é um contato futuro agendado derivado de uma venda.
// A data prevista é sempre derivável de sale_date + offset(sequence).
type FollowUp struct {
	ID            int       `json:"id"`
	AppointmentID int       `json:"appointment_id"`
	Sequence      int       `json:"sequence"`
	DueDate       time.Time `json:"due_date"`
	Done          bool      `json:"done"`
	Notes         string    `json:"notes"`
	ClientName    string    `json:"client_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsOverdue indica se o follow-up está atrasado em relação ao instante informado
func (f *FollowUp) IsOverdue(now time.Time) bool {
	return !f.Done && f.DueDate.Before(now)
}

// DaysUntilDue retorna os dias restantes até a data prevista (0 se concluído)
func (f *FollowUp) DaysUntilDue(now time.Time) int {
	if f.Done {
		return 0
	}

	return int(f.DueDate.Sub(now).Hours() / 24)
}

// FollowUpStatistics agrega os números de follow-up de um período
type FollowUpStatistics struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}
