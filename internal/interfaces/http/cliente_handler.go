package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fictcred/credito-api/internal/application/dto"
	"github.com/fictcred/credito-api/internal/application/usecase"
	"github.com/fictcred/credito-api/internal/domain"
)

// ClienteHandler trata as requisições HTTP de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Criar cria um novo cliente.
//
//	@Summary		Criar cliente
//	@Description	Cria um novo cliente no sistema com os dados fornecidos.
//	@Tags			Cliente
//	@Accept			json
//	@Produce		json
//	@Param			cliente	body		dto.ClienteInsertDTO	true	"Dados do cliente a ser criado"
//	@Success		200		{object}	dto.ClienteListDTO
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/cliente [post]
func (h *ClienteHandler) Criar(c *fiber.Ctx) error {
	var in dto.ClienteInsertDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorMessage{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if violations := in.Validate(); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError("clienteInsertDTO", violations))
	}
	cliente, err := h.uc.Criar(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cliente)
}

// Atualizar atualiza um cliente existente.
//
//	@Summary		Atualizar cliente
//	@Description	Atualiza os dados de um cliente existente pelo seu ID único.
//	@Tags			Cliente
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"ID do cliente a ser atualizado"
//	@Param			cliente	body		dto.ClienteUpdateDTO	true	"Dados atualizados do cliente"
//	@Success		200		{object}	dto.ClienteListDTO
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorMessage
//	@Router			/cliente/{id} [put]
func (h *ClienteHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.ClienteUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorMessage{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if violations := in.Validate(); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError("clienteUpdateDTO", violations))
	}
	cliente, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorMessage{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cliente)
}

// BuscarPorID busca um cliente pelo id.
//
//	@Summary		Buscar cliente por ID
//	@Description	Busca um cliente específico pelo seu ID único.
//	@Tags			Cliente
//	@Produce		json
//	@Param			id	path		string	true	"ID do cliente a ser buscado"
//	@Success		200	{object}	dto.ClienteListDTO
//	@Failure		404	{object}	dto.ErrorMessage
//	@Router			/cliente/{id} [get]
func (h *ClienteHandler) BuscarPorID(c *fiber.Ctx) error {
	cliente, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	if cliente == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorMessage{Code: "NOT_FOUND", Message: "cliente não encontrado"})
	}
	return c.JSON(cliente)
}

// Listar lista todos os clientes.
//
//	@Summary		Listar todos os clientes
//	@Description	Retorna uma lista com todos os clientes cadastrados no sistema.
//	@Tags			Cliente
//	@Produce		json
//	@Success		200	{array}	dto.ClienteListDTO
//	@Router			/cliente [get]
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.ListarTodos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Deletar remove um cliente. Responde 204 mesmo quando o id não existe
// (remoção idempotente; decisão documentada em DESIGN.md).
//
//	@Summary		Remover cliente
//	@Description	Remove um cliente do sistema pelo seu ID único.
//	@Tags			Cliente
//	@Param			id	path	string	true	"ID do cliente a ser removido"
//	@Success		204
//	@Router			/cliente/{id} [delete]
func (h *ClienteHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorMessage{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
