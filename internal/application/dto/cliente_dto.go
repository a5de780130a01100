package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fictcred/credito-api/internal/application/validation"
	"github.com/fictcred/credito-api/internal/domain/entity"
)

// Limites de tamanho do nome do cliente.
const (
	nomeMinLen = 2
	nomeMaxLen = 100
)

// ClienteInsertDTO corpo para POST /fictcred/v1/api/cliente.
// Campos numéricos são ponteiros para distinguir ausente de zero.
type ClienteInsertDTO struct {
	Nome        string           `json:"nome"`
	CPF         string           `json:"cpf"`
	RendaMensal *decimal.Decimal `json:"rendaMensal"`
}

// Validate aplica as regras de campo; lista vazia significa corpo válido.
func (d ClienteInsertDTO) Validate() []validation.Violation {
	return validation.Collect(
		validation.Required("nome", d.Nome, "Nome do cliente é obrigatório"),
		validation.LengthBetween("nome", d.Nome, nomeMinLen, nomeMaxLen),
		validation.Required("cpf", d.CPF, "CPF é obrigatório"),
		validation.ValidCPF("cpf", d.CPF, "CPF inválido"),
		validation.RequiredDecimal("rendaMensal", d.RendaMensal, "O valor da renda mensal não pode ser nulo"),
		validation.Positive("rendaMensal", d.RendaMensal, "O valor da renda mensal deve ser maior que zero"),
	)
}

// ClienteUpdateDTO corpo para PUT /fictcred/v1/api/cliente/{id}.
// DataCadastro é opcional: quando ausente, a data existente é mantida.
type ClienteUpdateDTO struct {
	Nome         string           `json:"nome"`
	CPF          string           `json:"cpf"`
	RendaMensal  *decimal.Decimal `json:"rendaMensal"`
	DataCadastro *time.Time       `json:"dataCadastro"`
}

// Validate aplica as mesmas regras de campo da inserção.
func (d ClienteUpdateDTO) Validate() []validation.Violation {
	return validation.Collect(
		validation.Required("nome", d.Nome, "Nome do cliente é obrigatório"),
		validation.LengthBetween("nome", d.Nome, nomeMinLen, nomeMaxLen),
		validation.Required("cpf", d.CPF, "CPF é obrigatório"),
		validation.ValidCPF("cpf", d.CPF, "CPF inválido"),
		validation.RequiredDecimal("rendaMensal", d.RendaMensal, "O valor da renda mensal não pode ser nulo"),
		validation.Positive("rendaMensal", d.RendaMensal, "O valor da renda mensal deve ser maior que zero"),
	)
}

// ClienteListDTO cliente nas respostas.
type ClienteListDTO struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	CPF          string          `json:"cpf"`
	RendaMensal  decimal.Decimal `json:"rendaMensal"`
	DataCadastro time.Time       `json:"dataCadastro"`
}

// NewClienteListDTO converte a entidade para o DTO de resposta.
func NewClienteListDTO(c *entity.Cliente) ClienteListDTO {
	return ClienteListDTO{
		ID:           c.ID,
		Nome:         c.Nome,
		CPF:          c.CPF,
		RendaMensal:  c.RendaMensal,
		DataCadastro: c.DataCadastro,
	}
}
