package appointments

import "errors"

// Tipos de erros de appuntamento
var (
	ErrAppointmentNotFound = errors.New("appuntamento não encontrado")
	ErrMissingClientName   = errors.New("nome do cliente é obrigatório")
	ErrInvalidType         = errors.New("tipologia de appuntamento inválida")
	ErrInvalidStatus       = errors.New("situação de appuntamento inválida")
	ErrMissingRecallDate   = errors.New("data de richiamo é obrigatória para a situação to_recall")
)
