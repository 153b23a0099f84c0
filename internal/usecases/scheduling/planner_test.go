package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPlan_OffsetsDaTabela(t *testing.T) {
	saleDate := date(2024, time.January, 10)

	planned, err := Plan(saleDate)
	require.NoError(t, err)
	require.Len(t, planned, ChainLength)

	tests := []struct {
		sequence int
		expected time.Time
	}{
		{sequence: 1, expected: date(2024, time.January, 12)},   // venda + 2 dias
		{sequence: 2, expected: date(2024, time.January, 31)},   // venda + 21 dias
		{sequence: 3, expected: date(2024, time.April, 10)},     // venda + 3 meses
		{sequence: 4, expected: date(2024, time.July, 10)},      // venda + 6 meses
		{sequence: 5, expected: date(2024, time.October, 10)},   // venda + 9 meses
		{sequence: 13, expected: date(2026, time.October, 10)},  // venda + 33 meses
		{sequence: 14, expected: date(2026, time.December, 27)}, // venda + 3 anos - 14 dias
	}

	for _, tt := range tests {
		entry := planned[tt.sequence-1]
		assert.Equal(t, tt.sequence, entry.Sequence)
		assert.Equal(t, tt.expected, entry.DueDate, "sequência %d", tt.sequence)
	}
}

func TestPlan_Deterministico(t *testing.T) {
	saleDate := date(2024, time.January, 10)

	first, err := Plan(saleDate)
	require.NoError(t, err)

	second, err := Plan(saleDate)
	require.NoError(t, err)

	// A mesma data de venda produz sempre a mesma cadeia
	assert.Equal(t, first, second)
}

func TestPlan_SequenciasOrdenadasEDatasNaoDecrescentes(t *testing.T) {
	saleDates := []time.Time{
		date(2024, time.January, 10),
		date(2024, time.January, 31), // fim de mês
		date(2024, time.February, 29), // ano bissexto
		date(2023, time.December, 31),
	}

	for _, saleDate := range saleDates {
		planned, err := Plan(saleDate)
		require.NoError(t, err)
		require.Len(t, planned, ChainLength)

		for i := range planned {
			assert.Equal(t, i+1, planned[i].Sequence)
			if i > 0 {
				assert.False(t, planned[i].DueDate.Before(planned[i-1].DueDate),
					"venda %s: sequência %d anterior à %d", saleDate.Format("2006-01-02"), i+1, i)
			}
		}
	}
}

func TestPlan_FimDeMesNormalizado(t *testing.T) {
	// 31 de janeiro + 3 meses não existe em abril: o calendário normaliza
	// para 1º de maio em vez de falhar
	planned, err := Plan(date(2024, time.January, 31))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.May, 1), planned[2].DueDate)
}

func TestPlan_DataZeradaRejeitada(t *testing.T) {
	planned, err := Plan(time.Time{})

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Nil(t, planned)
}

func TestDueDateFor_SequenciaForaDoIntervalo(t *testing.T) {
	saleDate := date(2024, time.January, 10)

	for _, sequence := range []int{0, -1, 15, 100} {
		_, err := DueDateFor(saleDate, sequence)
		assert.ErrorIs(t, err, ErrInvalidSequence, "sequência %d", sequence)
	}
}

func TestExtendChain(t *testing.T) {
	lastDueDate := date(2024, time.October, 10)

	tests := []struct {
		name         string
		lastSequence int
		expectedErr  error
		expected     *PlannedFollowUp
	}{
		{
			name:         "Cadeia imatura não é estendida",
			lastSequence: 4,
			expectedErr:  ErrChainNotMature,
		},
		{
			name:         "Cadeia no limiar gera exatamente um contato anual",
			lastSequence: 5,
			expected: &PlannedFollowUp{
				Sequence: 6,
				DueDate:  date(2025, time.October, 10),
			},
		},
		{
			name:         "Cadeia completa continua além do plano original",
			lastSequence: 14,
			expected: &PlannedFollowUp{
				Sequence: 15,
				DueDate:  date(2025, time.October, 10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ExtendChain(tt.lastSequence, lastDueDate)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, entry)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, entry)
		})
	}
}

func TestExtendChain_DataZeradaRejeitada(t *testing.T) {
	_, err := ExtendChain(10, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
