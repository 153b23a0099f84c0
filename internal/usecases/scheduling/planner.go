package scheduling

import "time"

const (
	// ChainLength é o número de follow-ups gerados por venda
	ChainLength = 14

	// ChainMaturityThreshold é a sequência mínima a partir da qual a cadeia
	// pode ser estendida além do plano original
	ChainMaturityThreshold = 5

	// ExtensionMonths é o intervalo da extensão anual da cadeia madura
	ExtensionMonths = 12
)

// PlannedFollowUp é uma entrada da cadeia ainda não persistida
type PlannedFollowUp struct {
	Sequence int
	DueDate  time.Time
}

// DueDateFor calcula a data prevista do follow-up de uma venda.
//
// A tabela de offsets é fixa:
//
//	seq 1      venda + 2 dias
//	seq 2      venda + 21 dias
//	seq 3..13  venda + 3*(seq-2) meses
//	seq 14     venda + 3 anos - 14 dias
//
// A aritmética de calendário segue a normalização do time.AddDate: 31 de
// janeiro + 1 mês resulta em 2/3 de março, nunca em erro.
func DueDateFor(saleDate time.Time, sequence int) (time.Time, error) {
	if saleDate.IsZero() {
		return time.Time{}, ErrInvalidDate
	}

	switch {
	case sequence == 1:
		return saleDate.AddDate(0, 0, 2), nil
	case sequence == 2:
		return saleDate.AddDate(0, 0, 21), nil
	case sequence >= 3 && sequence <= 13:
		return saleDate.AddDate(0, 3*(sequence-2), 0), nil
	case sequence == ChainLength:
		return saleDate.AddDate(3, 0, -14), nil
	default:
		return time.Time{}, ErrInvalidSequence
	}
}

// Plan gera a cadeia completa de follow-ups de uma venda, em ordem de
// sequência e com datas não decrescentes
func Plan(saleDate time.Time) ([]PlannedFollowUp, error) {
	if saleDate.IsZero() {
		return nil, ErrInvalidDate
	}

	planned := make([]PlannedFollowUp, 0, ChainLength)
	for sequence := 1; sequence <= ChainLength; sequence++ {
		dueDate, err := DueDateFor(saleDate, sequence)
		if err != nil {
			return nil, err
		}

		planned = append(planned, PlannedFollowUp{
			Sequence: sequence,
			DueDate:  dueDate,
		})
	}

	return planned, nil
}

// ExtendChain produz a próxima entrada de uma cadeia madura: um único
// follow-up doze meses após a última data prevista, com a sequência seguinte.
// Cadeias com menos de ChainMaturityThreshold contatos não são estendidas.
func ExtendChain(lastSequence int, lastDueDate time.Time) (*PlannedFollowUp, error) {
	if lastDueDate.IsZero() {
		return nil, ErrInvalidDate
	}

	if lastSequence < ChainMaturityThreshold {
		return nil, ErrChainNotMature
	}

	return &PlannedFollowUp{
		Sequence: lastSequence + 1,
		DueDate:  lastDueDate.AddDate(0, ExtensionMonths, 0),
	}, nil
}
