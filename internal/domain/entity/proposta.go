package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusProposta resultado da avaliação de uma proposta de crédito.
// Atribuído uma única vez na criação; nunca muda depois de persistido.
type StatusProposta string

const (
	StatusAprovada  StatusProposta = "APROVADA"
	StatusReprovada StatusProposta = "REPROVADA"
)

// PropostaCredito representa uma proposta de crédito vinculada a um cliente.
type PropostaCredito struct {
	ID              string
	ValorSolicitado decimal.Decimal
	NumeroParcelas  int
	Status          StatusProposta
	DataCriacao     time.Time
	ClienteID       string
}
