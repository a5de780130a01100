package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fictcred/credito-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC  *usecase.ClienteUseCase
	PropostaUC *usecase.PropostaUseCase
}

// Router registra as rotas da API sob /fictcred/v1/api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/fictcred/v1/api")

	clientes := api.Group("/cliente")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Criar)
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/:id", clienteHandler.BuscarPorID)
	clientes.Put("/:id", clienteHandler.Atualizar)
	clientes.Delete("/:id", clienteHandler.Deletar)

	propostas := api.Group("/proposta-cliente")
	propostaHandler := NewPropostaHandler(deps.PropostaUC)
	propostas.Post("/:clienteId", propostaHandler.Criar)
	propostas.Get("/cliente/:clienteId", propostaHandler.ListarPorCliente)
	propostas.Get("/:id", propostaHandler.BuscarPorID)
}
