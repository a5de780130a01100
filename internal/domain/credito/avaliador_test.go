package credito_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fictcred/credito-api/internal/domain/credito"
	"github.com/fictcred/credito-api/internal/domain/entity"
)

// renda mensal de referência usada em todos os cenários: R$ 5.000,00.
var rendaMensal = decimal.RequireFromString("5000.00")

func TestAvaliar_AprovaDentroDosLimites(t *testing.T) {
	status := credito.Avaliar(decimal.RequireFromString("20000.00"), 12, rendaMensal)
	assert.Equal(t, entity.StatusAprovada, status)
}

// Limite inclusivo: exatamente 5× a renda ainda aprova.
func TestAvaliar_AprovaNoLimiteExatoDeCincoVezesARenda(t *testing.T) {
	status := credito.Avaliar(decimal.RequireFromString("25000.00"), 12, rendaMensal)
	assert.Equal(t, entity.StatusAprovada, status)
}

// Um centavo acima do limite reprova. A comparação precisa ser decimal exata:
// em float64 binário 25000.01 > 25000.00 pode se perder com montantes maiores.
func TestAvaliar_ReprovaUmCentavoAcimaDoLimite(t *testing.T) {
	status := credito.Avaliar(decimal.RequireFromString("25000.01"), 12, rendaMensal)
	assert.Equal(t, entity.StatusReprovada, status)
}

func TestAvaliar_ReprovaValorAcimaDoLimiteIndependenteDasParcelas(t *testing.T) {
	for _, parcelas := range []int{1, 12, 24, 0, 30} {
		status := credito.Avaliar(decimal.RequireFromString("30000.00"), parcelas, rendaMensal)
		assert.Equal(t, entity.StatusReprovada, status,
			"valor 6x a renda deve reprovar com %d parcelas", parcelas)
	}
}

func TestAvaliar_ReprovaParcelasAcimaDoMaximo(t *testing.T) {
	status := credito.Avaliar(decimal.RequireFromString("1000.00"), 30, rendaMensal)
	assert.Equal(t, entity.StatusReprovada, status)
}

func TestAvaliar_LimitesDeParcelas(t *testing.T) {
	valor := decimal.RequireFromString("1000.00")

	assert.Equal(t, entity.StatusAprovada, credito.Avaliar(valor, 1, rendaMensal), "1 parcela é elegível")
	assert.Equal(t, entity.StatusAprovada, credito.Avaliar(valor, 24, rendaMensal), "24 parcelas é elegível")
	assert.Equal(t, entity.StatusReprovada, credito.Avaliar(valor, 0, rendaMensal), "0 parcelas reprova")
	assert.Equal(t, entity.StatusReprovada, credito.Avaliar(valor, 25, rendaMensal), "25 parcelas reprova")
	assert.Equal(t, entity.StatusReprovada, credito.Avaliar(valor, -1, rendaMensal), "parcelas negativas reprovam")
}

// A regra é determinística: mesmo input, mesmo resultado.
func TestAvaliar_Deterministico(t *testing.T) {
	valor := decimal.RequireFromString("12345.67")
	s1 := credito.Avaliar(valor, 10, rendaMensal)
	s2 := credito.Avaliar(valor, 10, rendaMensal)
	assert.Equal(t, s1, s2)
}
