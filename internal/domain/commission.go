package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentAllocation é a alocação de pagamentos de um fechamento: valores por
// appuntamento mais os campos reservados de acréscimo ("extra") e acconto
// ("deposit"), modelados explicitamente em vez de um mapa de chaves mistas.
type PaymentAllocation struct {
	LineItems map[int]float64 `json:"line_items"`
	Extra     *float64        `json:"extra"`
	Deposit   *float64        `json:"deposit"`
}

// IsEmpty indica que não há base de faturamento nenhuma. Extra e acconto são
// ponteiros: a chave presente com valor zero conta como base informada,
// distinta da chave ausente.
func (p PaymentAllocation) IsEmpty() bool {
	return len(p.LineItems) == 0 && p.Extra == nil && p.Deposit == nil
}

// LineTotal soma os pagamentos por appuntamento (sem extra nem acconto)
func (p PaymentAllocation) LineTotal() float64 {
	total := 0.0
	for _, amount := range p.LineItems {
		total += amount
	}
	return total
}

// ExtraAmount devolve o acréscimo, ou zero quando a chave está ausente
func (p PaymentAllocation) ExtraAmount() float64 {
	if p.Extra == nil {
		return 0
	}
	return *p.Extra
}

// DepositAmount devolve o acconto, ou zero quando a chave está ausente
func (p PaymentAllocation) DepositAmount() float64 {
	if p.Deposit == nil {
		return 0
	}
	return *p.Deposit
}

// PaymentTotal soma pagamentos e extra: é o valor que entra no acumulado
// anual do consultor quando o fechamento é aceito. O acconto não participa.
func (p PaymentAllocation) PaymentTotal() float64 {
	return p.LineTotal() + p.ExtraAmount()
}

// CommissionStatement é o valor derivado de um fechamento de provvigioni.
// Sem identidade nem ciclo de vida: calculado a cada requisição. Os valores
// permanecem decimais até a borda de formatação.
type CommissionStatement struct {
	Number                    string
	IssueDate                 time.Time
	PeriodMonth               time.Month
	PeriodYear                int
	GrossCommission           decimal.Decimal
	TaxWithholding            decimal.Decimal
	SocialSecurityWithholding decimal.Decimal
	Deposit                   decimal.Decimal
	NetBalance                decimal.Decimal
	AccruedExemption          decimal.Decimal
	ConsultantID              *int
}

// CommissionStatementResponse é a representação JSON do fechamento, com os
// valores monetários arredondados para duas casas apenas aqui, na borda.
type CommissionStatementResponse struct {
	Number                    string  `json:"number"`
	IssueDate                 string  `json:"issue_date"` // dd/mm/aaaa
	Period                    string  `json:"period"`
	GrossCommission           float64 `json:"gross_commission"`
	TaxWithholding            float64 `json:"tax_withholding"`
	SocialSecurityWithholding float64 `json:"social_security_withholding"`
	Deposit                   float64 `json:"deposit"`
	NetBalance                float64 `json:"net_balance"`
	AccruedExemption          float64 `json:"accrued_exemption"`
	ConsultantID              *int    `json:"consultant_id"`
}
