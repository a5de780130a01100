package repository

import "github.com/fictcred/credito-api/internal/domain/entity"

// PropostaRepository define a porta de persistência para PropostaCredito.
// GetByID retorna (nil, nil) quando o id não existe.
type PropostaRepository interface {
	Create(proposta *entity.PropostaCredito) error
	GetByID(id string) (*entity.PropostaCredito, error)
	ListByCliente(clienteID string) ([]*entity.PropostaCredito, error)
}
