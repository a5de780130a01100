// Package cpf valida CPF (Cadastro de Pessoas Físicas) pelo algoritmo
// módulo 11 da Receita Federal: 11 dígitos, os dois últimos são dígitos
// verificadores calculados sobre os anteriores.
package cpf

import (
	"fmt"
	"unicode"
)

// Validate valida o CPF (com ou sem pontuação). Aceita "529.982.247-25"
// ou "52998224725". Sequências com todos os dígitos iguais ("111.111.111-11")
// têm dígitos verificadores válidos mas são rejeitadas pela Receita.
func Validate(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("cpf: deve ter 11 dígitos, foram encontrados %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("cpf: sequência de dígitos repetidos não é um CPF válido")
	}
	if d := checkDigit(digits[:9]); digits[9] != d {
		return fmt.Errorf("cpf: primeiro dígito verificador inválido: esperado %c, recebido %c", d, digits[9])
	}
	if d := checkDigit(digits[:10]); digits[10] != d {
		return fmt.Errorf("cpf: segundo dígito verificador inválido: esperado %c, recebido %c", d, digits[10])
	}
	return nil
}

// checkDigit calcula o dígito verificador módulo 11 para a base informada
// (9 dígitos para o primeiro verificador, 10 para o segundo). Os pesos
// decrescem de len(base)+1 até 2, da esquerda para a direita.
func checkDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * (len(base) + 1 - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
