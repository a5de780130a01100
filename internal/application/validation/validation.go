// Package validation contém os predicados de validação de campos aplicados
// na borda da API, antes de qualquer chamada a caso de uso. Cada regra é uma
// função pura nomeada que devolve uma violação estruturada (ou nil).
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fictcred/credito-api/pkg/cpf"
)

// Violation descreve a violação de uma regra sobre um campo de entrada.
// Parameter carrega o valor rejeitado, como veio na requisição.
type Violation struct {
	Message   string
	Field     string
	Parameter interface{}
}

// Required o campo string não pode ser vazio.
func Required(field, value, message string) *Violation {
	if value == "" {
		return &Violation{Message: message, Field: field, Parameter: value}
	}
	return nil
}

// RequiredDecimal o campo decimal precisa estar presente no corpo.
func RequiredDecimal(field string, value *decimal.Decimal, message string) *Violation {
	if value == nil {
		return &Violation{Message: message, Field: field, Parameter: nil}
	}
	return nil
}

// RequiredInt o campo inteiro precisa estar presente no corpo.
func RequiredInt(field string, value *int, message string) *Violation {
	if value == nil {
		return &Violation{Message: message, Field: field, Parameter: nil}
	}
	return nil
}

// Positive o valor decimal deve ser estritamente maior que zero.
// Campo ausente fica a cargo de RequiredDecimal.
func Positive(field string, value *decimal.Decimal, message string) *Violation {
	if value == nil {
		return nil
	}
	if !value.IsPositive() {
		return &Violation{Message: message, Field: field, Parameter: value.String()}
	}
	return nil
}

// PositiveInt o valor inteiro deve ser estritamente maior que zero.
func PositiveInt(field string, value *int, message string) *Violation {
	if value == nil {
		return nil
	}
	if *value <= 0 {
		return &Violation{Message: message, Field: field, Parameter: *value}
	}
	return nil
}

// LengthBetween o tamanho da string deve estar em [min, max]. Não se aplica
// a string vazia (Required cobre esse caso).
func LengthBetween(field, value string, min, max int) *Violation {
	if value == "" {
		return nil
	}
	if n := len([]rune(value)); n < min || n > max {
		return &Violation{
			Message:   fmt.Sprintf("%s deve ter entre %d e %d caracteres", field, min, max),
			Field:     field,
			Parameter: value,
		}
	}
	return nil
}

// ValidCPF o campo deve ser um CPF com dígitos verificadores corretos.
// Não se aplica a string vazia (Required cobre esse caso).
func ValidCPF(field, value, message string) *Violation {
	if value == "" {
		return nil
	}
	if err := cpf.Validate(value); err != nil {
		return &Violation{Message: message, Field: field, Parameter: value}
	}
	return nil
}

// Collect agrupa as violações não nulas, preservando a ordem de declaração.
func Collect(vs ...*Violation) []Violation {
	var out []Violation
	for _, v := range vs {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
