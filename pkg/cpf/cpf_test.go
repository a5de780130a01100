package cpf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fictcred/credito-api/pkg/cpf"
)

func TestValidate_CPFValidoPontuado(t *testing.T) {
	assert.NoError(t, cpf.Validate("529.982.247-25"))
	assert.NoError(t, cpf.Validate("111.444.777-35"))
}

func TestValidate_CPFValidoSemPontuacao(t *testing.T) {
	assert.NoError(t, cpf.Validate("52998224725"))
	assert.NoError(t, cpf.Validate("11144477735"))
}

func TestValidate_PrimeiroDigitoVerificadorInvalido(t *testing.T) {
	// 529.982.247-35: primeiro verificador correto seria 2.
	assert.Error(t, cpf.Validate("529.982.247-35"))
}

func TestValidate_SegundoDigitoVerificadorInvalido(t *testing.T) {
	// 529.982.247-24: segundo verificador correto seria 5.
	assert.Error(t, cpf.Validate("529.982.247-24"))
	assert.Error(t, cpf.Validate("123.456.789-00"))
}

func TestValidate_QuantidadeDeDigitosErrada(t *testing.T) {
	assert.Error(t, cpf.Validate(""))
	assert.Error(t, cpf.Validate("1234567890"))     // 10 dígitos
	assert.Error(t, cpf.Validate("123456789012"))   // 12 dígitos
	assert.Error(t, cpf.Validate("abc.def.ghi-jk")) // sem dígitos
}

func TestValidate_SequenciaDeDigitosIguais(t *testing.T) {
	// Verificadores batem, mas a Receita rejeita sequências repetidas.
	for _, s := range []string{"000.000.000-00", "111.111.111-11", "99999999999"} {
		assert.Error(t, cpf.Validate(s), "%s deve ser rejeitado", s)
	}
}
