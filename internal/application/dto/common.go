package dto

import (
	"net/http"

	"github.com/fictcred/credito-api/internal/application/validation"
)

// ErrorObject uma violação de campo no corpo de erro de validação.
type ErrorObject struct {
	Message   string      `json:"message"`
	Field     string      `json:"field"`
	Parameter interface{} `json:"parameter"`
}

// ErrorResponse corpo estruturado devolvido em 400 quando a validação de
// campos falha antes de o caso de uso ser invocado.
type ErrorResponse struct {
	Message    string        `json:"message"`
	Code       int           `json:"code"`
	Status     string        `json:"status"`
	ObjectName string        `json:"objectName"`
	Errors     []ErrorObject `json:"errors"`
}

// NewValidationError monta o corpo 400 a partir das violações coletadas na
// borda da API. objectName identifica o DTO que falhou ("clienteInsertDTO",
// "propostaCreditoInsertDTO").
func NewValidationError(objectName string, violations []validation.Violation) ErrorResponse {
	errs := make([]ErrorObject, 0, len(violations))
	for _, v := range violations {
		errs = append(errs, ErrorObject{Message: v.Message, Field: v.Field, Parameter: v.Parameter})
	}
	return ErrorResponse{
		Message:    "The request has invalid fields",
		Code:       http.StatusBadRequest,
		Status:     http.StatusText(http.StatusBadRequest),
		ObjectName: objectName,
		Errors:     errs,
	}
}

// ErrorMessage corpo simples para erros fora da validação de campos
// (corpo malformado, falhas de persistência).
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
