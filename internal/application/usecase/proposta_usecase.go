package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/fictcred/credito-api/internal/application/dto"
	"github.com/fictcred/credito-api/internal/domain"
	"github.com/fictcred/credito-api/internal/domain/credito"
	"github.com/fictcred/credito-api/internal/domain/entity"
	"github.com/fictcred/credito-api/internal/domain/repository"
)

// PropostaUseCase casos de uso de propostas de crédito.
type PropostaUseCase struct {
	propostas repository.PropostaRepository
	clientes  repository.ClienteRepository
}

// NewPropostaUseCase constrói o caso de uso.
func NewPropostaUseCase(propostas repository.PropostaRepository, clientes repository.ClienteRepository) *PropostaUseCase {
	return &PropostaUseCase{propostas: propostas, clientes: clientes}
}

// Criar resolve o cliente, avalia a proposta pela regra de subscrição e
// persiste com status e data de criação carimbados pelo servidor. A única
// mutação é o insert final: se o cliente não resolve, nada é gravado.
// Retorna domain.ErrClienteNotFound quando o clienteID não existe.
func (uc *PropostaUseCase) Criar(clienteID string, in dto.PropostaCreditoInsertDTO) (*dto.PropostaCreditoListDTO, error) {
	cliente, err := uc.clientes.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}

	status := credito.Avaliar(*in.ValorSolicitado, *in.NumeroParcelas, cliente.RendaMensal)

	proposta := &entity.PropostaCredito{
		ID:              uuid.New().String(),
		ValorSolicitado: *in.ValorSolicitado,
		NumeroParcelas:  *in.NumeroParcelas,
		Status:          status,
		DataCriacao:     time.Now(),
		ClienteID:       cliente.ID,
	}
	if err := uc.propostas.Create(proposta); err != nil {
		return nil, err
	}
	out := dto.NewPropostaCreditoListDTO(proposta, cliente.Nome)
	return &out, nil
}

// BuscarPorID retorna a proposta ou (nil, nil) quando o id não existe.
func (uc *PropostaUseCase) BuscarPorID(id string) (*dto.PropostaCreditoListDTO, error) {
	proposta, err := uc.propostas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proposta == nil {
		return nil, nil
	}
	var nome string
	if cliente, err := uc.clientes.GetByID(proposta.ClienteID); err != nil {
		return nil, err
	} else if cliente != nil {
		nome = cliente.Nome
	}
	out := dto.NewPropostaCreditoListDTO(proposta, nome)
	return &out, nil
}

// ListarPorCliente lista as propostas do cliente (possivelmente vazia).
// Retorna domain.ErrClienteNotFound quando o clienteID não existe.
func (uc *PropostaUseCase) ListarPorCliente(clienteID string) ([]dto.PropostaCreditoListDTO, error) {
	cliente, err := uc.clientes.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	list, err := uc.propostas.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PropostaCreditoListDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewPropostaCreditoListDTO(p, cliente.Nome))
	}
	return out, nil
}
