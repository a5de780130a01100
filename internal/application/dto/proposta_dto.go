package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fictcred/credito-api/internal/application/validation"
	"github.com/fictcred/credito-api/internal/domain/entity"
)

// PropostaCreditoInsertDTO corpo para POST /fictcred/v1/api/proposta-cliente/{clienteId}.
type PropostaCreditoInsertDTO struct {
	ValorSolicitado *decimal.Decimal `json:"valorSolicitado"`
	NumeroParcelas  *int             `json:"numeroParcelas"`
}

// Validate aplica as regras de campo; lista vazia significa corpo válido.
func (d PropostaCreditoInsertDTO) Validate() []validation.Violation {
	return validation.Collect(
		validation.RequiredDecimal("valorSolicitado", d.ValorSolicitado, "O valor solicitado da proposta não pode ser nulo"),
		validation.Positive("valorSolicitado", d.ValorSolicitado, "O valor solicitado da proposta deve ser maior que zero"),
		validation.RequiredInt("numeroParcelas", d.NumeroParcelas, "O numero de parcelas da proposta não pode ser nulo"),
		validation.PositiveInt("numeroParcelas", d.NumeroParcelas, "O numero de parcelas da proposta deve ser maior que zero"),
	)
}

// PropostaCreditoListDTO proposta nas respostas, com os dados do cliente embutidos.
type PropostaCreditoListDTO struct {
	ID              string                `json:"id"`
	ValorSolicitado decimal.Decimal       `json:"valorSolicitado"`
	NumeroParcelas  int                   `json:"numeroParcelas"`
	Status          entity.StatusProposta `json:"status"`
	DataCriacao     time.Time             `json:"dataCriacao"`
	ClienteID       string                `json:"clienteId"`
	ClienteNome     string                `json:"clienteNome"`
}

// NewPropostaCreditoListDTO converte a entidade para o DTO de resposta.
// clienteNome vem do cliente resolvido pelo caso de uso.
func NewPropostaCreditoListDTO(p *entity.PropostaCredito, clienteNome string) PropostaCreditoListDTO {
	return PropostaCreditoListDTO{
		ID:              p.ID,
		ValorSolicitado: p.ValorSolicitado,
		NumeroParcelas:  p.NumeroParcelas,
		Status:          p.Status,
		DataCriacao:     p.DataCriacao,
		ClienteID:       p.ClienteID,
		ClienteNome:     clienteNome,
	}
}
