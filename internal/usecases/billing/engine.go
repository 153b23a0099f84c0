package billing

import (
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Fatores do fechamento de provvigioni. Os valores são os contratuais do
// regime fiscal dos consultores e nunca variam por requisição.
var (
	// GrossMarkupFactor converte a base de pagamentos no compenso lordo
	GrossMarkupFactor = decimal.RequireFromString("1.21862667")

	// TaxableFraction é a fração do lordo sujeita à ritenuta d'acconto
	TaxableFraction = decimal.RequireFromString("0.78")

	// WithholdingRate é a alíquota da ritenuta d'acconto
	WithholdingRate = decimal.RequireFromString("0.23")

	// SocialSecurityRate é a retenção INPS, fixada em zero no regime atual
	SocialSecurityRate = decimal.Zero

	// ExemptionFactor projeta o acumulado anual no teto de isenção
	ExemptionFactor = decimal.RequireFromString("1.22")
)

// Computation é o resultado intermediário do fechamento, ainda em decimais
// plenos. O arredondamento para duas casas acontece apenas na resposta.
type Computation struct {
	GrossCommission           decimal.Decimal
	TaxWithholding            decimal.Decimal
	SocialSecurityWithholding decimal.Decimal
	Deposit                   decimal.Decimal
	NetBalance                decimal.Decimal
	AccruedExemption          decimal.Decimal
}

// Compute deriva o fechamento a partir da alocação de pagamentos e do
// acumulado anual do consultor:
//
//	lordo    = (soma dos pagamentos + extra) * GrossMarkupFactor
//	ritenuta = lordo * TaxableFraction * WithholdingRate
//	inps     = lordo * SocialSecurityRate
//	netto    = lordo - ritenuta - inps - acconto
//	isenção  = acumulado anual * ExemptionFactor
//
// O acconto apenas abate o saldo final: não participa do lordo nem da base
// das retenções. O netto pode ser negativo quando o acconto excede o lordo.
func Compute(allocation domain.PaymentAllocation, totalYearlyPay float64) (*Computation, error) {
	if allocation.IsEmpty() {
		return nil, ErrEmptyBillingBasis
	}

	for _, amount := range allocation.LineItems {
		if amount < 0 {
			return nil, ErrNegativeAmount
		}
	}
	if allocation.ExtraAmount() < 0 || allocation.DepositAmount() < 0 {
		return nil, ErrNegativeAmount
	}

	base := decimal.NewFromFloat(allocation.LineTotal()).
		Add(decimal.NewFromFloat(allocation.ExtraAmount()))

	gross := base.Mul(GrossMarkupFactor)
	tax := gross.Mul(TaxableFraction).Mul(WithholdingRate)
	socialSecurity := gross.Mul(SocialSecurityRate)
	deposit := decimal.NewFromFloat(allocation.DepositAmount())
	net := gross.Sub(tax).Sub(socialSecurity).Sub(deposit)

	return &Computation{
		GrossCommission:           gross,
		TaxWithholding:            tax,
		SocialSecurityWithholding: socialSecurity,
		Deposit:                   deposit,
		NetBalance:                net,
		AccruedExemption:          decimal.NewFromFloat(totalYearlyPay).Mul(ExemptionFactor),
	}, nil
}
