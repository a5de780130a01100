package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fictcred/credito-api/internal/application/dto"
	"github.com/fictcred/credito-api/internal/application/usecase"
	"github.com/fictcred/credito-api/internal/domain"
)

// PropostaHandler trata as requisições HTTP de propostas de crédito.
type PropostaHandler struct {
	uc *usecase.PropostaUseCase
}

// NewPropostaHandler constrói o handler.
func NewPropostaHandler(uc *usecase.PropostaUseCase) *PropostaHandler {
	return &PropostaHandler{uc: uc}
}

// Criar cria uma proposta para o cliente do path. Cliente inexistente é 400
// neste caminho: o corpo referencia um cliente que não resolve, portanto a
// requisição é inválida (nos GETs o cliente é o recurso endereçado e vira 404).
//
//	@Summary		Criar proposta de crédito
//	@Description	Cria uma nova proposta de crédito para um cliente específico. A proposta é avaliada automaticamente: valor solicitado até 5x a renda mensal do cliente e número de parcelas entre 1 e 24.
//	@Tags			Proposta de Crédito
//	@Accept			json
//	@Produce		json
//	@Param			clienteId	path		string							true	"ID do cliente para o qual a proposta será criada"
//	@Param			proposta	body		dto.PropostaCreditoInsertDTO	true	"Dados da proposta a ser criada"
//	@Success		200			{object}	dto.PropostaCreditoListDTO
//	@Failure		400			{object}	dto.ErrorResponse
//	@Router			/proposta-cliente/{clienteId} [post]
func (h *PropostaHandler) Criar(c *fiber.Ctx) error {
	var in dto.PropostaCreditoInsertDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorMessage{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if violations := in.Validate(); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError("propostaCreditoInsertDTO", violations))
	}
	proposta, err := h.uc.Criar(c.Params("clienteId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorMessage{Code: "CLIENTE_NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(proposta)
}

// BuscarPorID busca uma proposta pelo id.
//
//	@Summary		Buscar proposta por id
//	@Description	Retorna a proposta de acordo com o id passado.
//	@Tags			Proposta de Crédito
//	@Produce		json
//	@Param			id	path		string	true	"ID da proposta"
//	@Success		200	{object}	dto.PropostaCreditoListDTO
//	@Failure		404	{object}	dto.ErrorMessage
//	@Router			/proposta-cliente/{id} [get]
func (h *PropostaHandler) BuscarPorID(c *fiber.Ctx) error {
	proposta, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	if proposta == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorMessage{Code: "NOT_FOUND", Message: "proposta não encontrada"})
	}
	return c.JSON(proposta)
}

// ListarPorCliente lista as propostas de um cliente.
//
//	@Summary		Listar propostas por cliente
//	@Description	Lista todas as propostas de crédito associadas a um cliente específico.
//	@Tags			Proposta de Crédito
//	@Produce		json
//	@Param			clienteId	path		string	true	"ID do cliente cujas propostas serão listadas"
//	@Success		200			{array}		dto.PropostaCreditoListDTO
//	@Failure		404			{object}	dto.ErrorMessage
//	@Router			/proposta-cliente/cliente/{clienteId} [get]
func (h *PropostaHandler) ListarPorCliente(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorCliente(c.Params("clienteId"))
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorMessage{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
