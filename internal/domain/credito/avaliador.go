// Package credito contém a regra de subscrição (underwriting) das propostas.
// É lógica pura de domínio: sem acesso a armazenamento, sem efeitos colaterais.
package credito

import (
	"github.com/shopspring/decimal"

	"github.com/fictcred/credito-api/internal/domain/entity"
)

// Limites da política de crédito.
const (
	// MultiplicadorRenda teto do valor solicitado em múltiplos da renda mensal.
	MultiplicadorRenda = 5
	// MinParcelas e MaxParcelas faixa aceita de parcelas (inclusiva).
	MinParcelas = 1
	MaxParcelas = 24
)

var multiplicadorRenda = decimal.NewFromInt(MultiplicadorRenda)

// Avaliar aplica a política de crédito na ordem definida; a primeira regra
// que reprovar vence:
//
//  1. valorSolicitado > rendaMensal × 5 → REPROVADA
//  2. numeroParcelas fora de [1, 24]    → REPROVADA
//  3. caso contrário                    → APROVADA
//
// A comparação é decimal exata: valorSolicitado igual a exatamente 5× a renda
// ainda aprova (limite inclusivo).
func Avaliar(valorSolicitado decimal.Decimal, numeroParcelas int, rendaMensal decimal.Decimal) entity.StatusProposta {
	limite := rendaMensal.Mul(multiplicadorRenda)
	if valorSolicitado.GreaterThan(limite) {
		return entity.StatusReprovada
	}
	if numeroParcelas < MinParcelas || numeroParcelas > MaxParcelas {
		return entity.StatusReprovada
	}
	return entity.StatusAprovada
}
