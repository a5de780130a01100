package repository

import "github.com/fictcred/credito-api/internal/domain/entity"

// ClienteRepository define a porta de persistência para Cliente.
// GetByID retorna (nil, nil) quando o id não existe.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	ListAll() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
