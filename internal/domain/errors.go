package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrClienteNotFound = errors.New("cliente não encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
)
