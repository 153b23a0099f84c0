package hierarchy

import "errors"

// Tipos de erros da hierarquia de consultores
var (
	ErrConsultantNotFound = errors.New("consultor não encontrado")
	ErrParentNotFound     = errors.New("responsável não encontrado")
	ErrSelfParent         = errors.New("um consultor não pode ser responsável por si mesmo")
)
