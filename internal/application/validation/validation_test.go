package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fictcred/credito-api/internal/application/validation"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func TestRequired(t *testing.T) {
	assert.Nil(t, validation.Required("nome", "João", "obrigatório"))

	v := validation.Required("nome", "", "obrigatório")
	require.NotNil(t, v)
	assert.Equal(t, "nome", v.Field)
	assert.Equal(t, "obrigatório", v.Message)
}

func TestRequiredDecimal(t *testing.T) {
	assert.Nil(t, validation.RequiredDecimal("rendaMensal", decPtr("0"), "não pode ser nulo"))

	v := validation.RequiredDecimal("rendaMensal", nil, "não pode ser nulo")
	require.NotNil(t, v)
	assert.Equal(t, "rendaMensal", v.Field)
}

func TestPositive(t *testing.T) {
	assert.Nil(t, validation.Positive("rendaMensal", decPtr("0.01"), "maior que zero"))
	// Campo ausente fica a cargo de RequiredDecimal.
	assert.Nil(t, validation.Positive("rendaMensal", nil, "maior que zero"))

	assert.NotNil(t, validation.Positive("rendaMensal", decPtr("0"), "maior que zero"))
	assert.NotNil(t, validation.Positive("rendaMensal", decPtr("-10.50"), "maior que zero"))
}

func TestPositiveInt(t *testing.T) {
	assert.Nil(t, validation.PositiveInt("numeroParcelas", intPtr(1), "maior que zero"))
	assert.Nil(t, validation.PositiveInt("numeroParcelas", nil, "maior que zero"))

	assert.NotNil(t, validation.PositiveInt("numeroParcelas", intPtr(0), "maior que zero"))
	assert.NotNil(t, validation.PositiveInt("numeroParcelas", intPtr(-3), "maior que zero"))
}

func TestLengthBetween(t *testing.T) {
	assert.Nil(t, validation.LengthBetween("nome", "Jo", 2, 100))
	assert.Nil(t, validation.LengthBetween("nome", "", 2, 100), "string vazia é caso do Required")

	assert.NotNil(t, validation.LengthBetween("nome", "J", 2, 100))

	longo := make([]rune, 101)
	for i := range longo {
		longo[i] = 'a'
	}
	assert.NotNil(t, validation.LengthBetween("nome", string(longo), 2, 100))
}

func TestValidCPF(t *testing.T) {
	assert.Nil(t, validation.ValidCPF("cpf", "529.982.247-25", "CPF inválido"))
	assert.Nil(t, validation.ValidCPF("cpf", "", "CPF inválido"), "string vazia é caso do Required")

	v := validation.ValidCPF("cpf", "529.982.247-00", "CPF inválido")
	require.NotNil(t, v)
	assert.Equal(t, "CPF inválido", v.Message)
	assert.Equal(t, "529.982.247-00", v.Parameter)
}

func TestCollect_PreservaOrdemEDescartaNil(t *testing.T) {
	a := &validation.Violation{Field: "a"}
	b := &validation.Violation{Field: "b"}

	out := validation.Collect(nil, a, nil, b)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Field)
	assert.Equal(t, "b", out[1].Field)

	assert.Empty(t, validation.Collect(nil, nil))
}
