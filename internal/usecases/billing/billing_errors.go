package billing

import "errors"

// Tipos de erros de fechamento de provvigioni
var (
	ErrEmptyBillingBasis  = errors.New("nada a faturar: sem pagamentos nem acréscimos")
	ErrConsultantNotFound = errors.New("consultor não encontrado")
	ErrNegativeAmount     = errors.New("valores negativos não são permitidos na alocação")
)
