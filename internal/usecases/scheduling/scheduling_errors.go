package scheduling

import "errors"

// Tipos de erros de agendamento personalizados
var (
	ErrInvalidDate         = errors.New("data de venda ausente ou inválida")
	ErrInvalidSequence     = errors.New("sequência fora do intervalo da cadeia")
	ErrChainNotMature      = errors.New("a cadeia ainda não atingiu a maturidade para ser estendida")
	ErrFollowUpNotFound    = errors.New("follow-up não encontrado")
	ErrAlreadyCompleted    = errors.New("follow-up já concluído")
	ErrPastDate            = errors.New("a nova data precisa ser futura")
	ErrAppointmentNotSold  = errors.New("o appuntamento ainda não foi vendido")
	ErrAppointmentNotFound = errors.New("appuntamento não encontrado")
)
