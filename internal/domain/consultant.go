package domain

import "time"

// Consultant é um nó da floresta de consultores: ParentID aponta para o
// responsável ("mentor"); a lista de subordinados é sempre derivada, nunca
// armazenada no registro.
type Consultant struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Position       string    `json:"position"`
	ParentID       *int      `json:"parent_id"`
	TotalYearlyPay float64   `json:"total_yearly_pay"`
	Residency      *string   `json:"residency"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email"`
	TaxCode        *string   `json:"tax_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpdateConsultantRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Position  *string `json:"position"`
	ParentID  *int    `json:"parent_id"`
	Residency *string `json:"residency"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	TaxCode   *string `json:"tax_code"`
}

// GroupSales é o total de vendas de grupo de um consultor: as próprias vendas
// do mês somadas às vendas dos subordinados diretos (um nível apenas).
type GroupSales struct {
	ConsultantID     int   `json:"consultant_id"`
	Month            int   `json:"month"`
	Year             int   `json:"year"`
	OwnSales         int   `json:"own_sales"`
	SubordinateSales int   `json:"subordinate_sales"`
	Total            int   `json:"total"`
	SubordinateIDs   []int `json:"subordinate_ids"`
}
