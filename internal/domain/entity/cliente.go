package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente representa um cliente do sistema de crédito.
type Cliente struct {
	ID           string
	Nome         string
	CPF          string // CPF (Cadastro de Pessoas Físicas), apenas dígitos ou pontuado
	RendaMensal  decimal.Decimal
	DataCadastro time.Time
}
