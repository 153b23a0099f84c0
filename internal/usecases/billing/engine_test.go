package billing

import (
	"testing"

	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestCompute_FormulaDoFechamento(t *testing.T) {
	allocation := domain.PaymentAllocation{
		LineItems: map[int]float64{1: 1000, 2: 500},
		Extra:     floatPtr(100),
		Deposit:   floatPtr(200),
	}

	computation, err := Compute(allocation, 0)
	require.NoError(t, err)

	// base = 1600; lordo = 1600 * 1.21862667
	assert.True(t, computation.GrossCommission.Equal(decimal.RequireFromString("1949.80267200")),
		"lordo calculado: %s", computation.GrossCommission)

	// ritenuta = lordo * 0.78 * 0.23
	assert.True(t, computation.TaxWithholding.Equal(decimal.RequireFromString("349.7945993568")),
		"ritenuta calculada: %s", computation.TaxWithholding)

	// INPS fixo em zero no regime atual
	assert.True(t, computation.SocialSecurityWithholding.IsZero())

	// netto = lordo - ritenuta - inps - acconto
	assert.True(t, computation.NetBalance.Equal(decimal.RequireFromString("1400.0080726432")),
		"netto calculado: %s", computation.NetBalance)
}

func TestCompute_AccontoNaoEntraNoLordoNemNasRetencoes(t *testing.T) {
	semAcconto := domain.PaymentAllocation{LineItems: map[int]float64{1: 1000}}
	comAcconto := domain.PaymentAllocation{LineItems: map[int]float64{1: 1000}, Deposit: floatPtr(300)}

	a, err := Compute(semAcconto, 0)
	require.NoError(t, err)

	b, err := Compute(comAcconto, 0)
	require.NoError(t, err)

	// Lordo e retenções idênticos: o acconto só abate o saldo final
	assert.True(t, a.GrossCommission.Equal(b.GrossCommission))
	assert.True(t, a.TaxWithholding.Equal(b.TaxWithholding))
	assert.True(t, a.NetBalance.Sub(b.NetBalance).Equal(decimal.NewFromInt(300)))
}

func TestCompute_NettoNegativoPermitido(t *testing.T) {
	allocation := domain.PaymentAllocation{
		LineItems: map[int]float64{1: 10},
		Deposit:   floatPtr(500),
	}

	computation, err := Compute(allocation, 0)
	require.NoError(t, err)

	assert.True(t, computation.NetBalance.IsNegative())
}

func TestCompute_ApenasExtraTambemFatura(t *testing.T) {
	allocation := domain.PaymentAllocation{Extra: floatPtr(250)}

	computation, err := Compute(allocation, 0)
	require.NoError(t, err)

	expected := decimal.NewFromInt(250).Mul(GrossMarkupFactor)
	assert.True(t, computation.GrossCommission.Equal(expected))
}

func TestCompute_BaseVaziaRejeitada(t *testing.T) {
	tests := []struct {
		name       string
		allocation domain.PaymentAllocation
	}{
		{name: "Alocação totalmente vazia", allocation: domain.PaymentAllocation{}},
		{name: "Mapa de linhas vazio", allocation: domain.PaymentAllocation{LineItems: map[int]float64{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.allocation, 0)
			assert.ErrorIs(t, err, ErrEmptyBillingBasis)
		})
	}
}

func TestCompute_ChaveInformadaComZeroNaoEhBaseVazia(t *testing.T) {
	tests := []struct {
		name       string
		allocation domain.PaymentAllocation
	}{
		{name: "Extra informado em zero", allocation: domain.PaymentAllocation{Extra: floatPtr(0)}},
		{name: "Acconto informado em zero", allocation: domain.PaymentAllocation{Deposit: floatPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			computation, err := Compute(tt.allocation, 0)

			// A chave presente, mesmo valendo zero, é base informada
			require.NoError(t, err)
			assert.True(t, computation.GrossCommission.IsZero())
		})
	}
}

func TestCompute_ValoresNegativosRejeitados(t *testing.T) {
	tests := []struct {
		name       string
		allocation domain.PaymentAllocation
	}{
		{name: "Linha negativa", allocation: domain.PaymentAllocation{LineItems: map[int]float64{1: -10}}},
		{name: "Extra negativo", allocation: domain.PaymentAllocation{LineItems: map[int]float64{1: 10}, Extra: floatPtr(-1)}},
		{name: "Acconto negativo", allocation: domain.PaymentAllocation{LineItems: map[int]float64{1: 10}, Deposit: floatPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.allocation, 0)
			assert.ErrorIs(t, err, ErrNegativeAmount)
		})
	}
}

func TestCompute_TetoDeIsencao(t *testing.T) {
	allocation := domain.PaymentAllocation{LineItems: map[int]float64{1: 100}}

	computation, err := Compute(allocation, 4500)
	require.NoError(t, err)

	// isenção = acumulado anual * 1.22, independente da alocação corrente
	assert.True(t, computation.AccruedExemption.Equal(decimal.RequireFromString("5490")),
		"isenção calculada: %s", computation.AccruedExemption)
}
