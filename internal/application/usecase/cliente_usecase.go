package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/fictcred/credito-api/internal/application/dto"
	"github.com/fictcred/credito-api/internal/domain"
	"github.com/fictcred/credito-api/internal/domain/entity"
	"github.com/fictcred/credito-api/internal/domain/repository"
)

// ClienteUseCase casos de uso de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Criar cadastra um cliente com id novo e data de cadastro do relógio do servidor.
func (uc *ClienteUseCase) Criar(in dto.ClienteInsertDTO) (*dto.ClienteListDTO, error) {
	cliente := &entity.Cliente{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		CPF:          in.CPF,
		RendaMensal:  *in.RendaMensal,
		DataCadastro: time.Now(),
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	out := dto.NewClienteListDTO(cliente)
	return &out, nil
}

// BuscarPorID retorna o cliente ou (nil, nil) quando o id não existe.
// Ausência não é erro neste caminho; o handler decide o 404.
func (uc *ClienteUseCase) BuscarPorID(id string) (*dto.ClienteListDTO, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	out := dto.NewClienteListDTO(cliente)
	return &out, nil
}

// ListarTodos retorna todos os clientes, em ordem definida pelo armazenamento.
func (uc *ClienteUseCase) ListarTodos() ([]dto.ClienteListDTO, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteListDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewClienteListDTO(c))
	}
	return out, nil
}

// Atualizar sobrescreve nome, cpf e renda mensal do cliente existente.
// O id nunca muda. DataCadastro só é sobrescrita quando vem no corpo.
// Retorna domain.ErrClienteNotFound quando o id não existe.
func (uc *ClienteUseCase) Atualizar(id string, in dto.ClienteUpdateDTO) (*dto.ClienteListDTO, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNotFound
	}
	cliente.Nome = in.Nome
	cliente.CPF = in.CPF
	cliente.RendaMensal = *in.RendaMensal
	if in.DataCadastro != nil {
		cliente.DataCadastro = *in.DataCadastro
	}
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	out := dto.NewClienteListDTO(cliente)
	return &out, nil
}

// Deletar remove o cliente e, em cascata, as propostas dele. Remoção é
// idempotente: deletar um id inexistente não é erro.
func (uc *ClienteUseCase) Deletar(id string) error {
	return uc.repo.Delete(id)
}
