package usecase_test

import (
	"github.com/shopspring/decimal"

	"github.com/fictcred/credito-api/internal/domain/entity"
	"github.com/fictcred/credito-api/internal/domain/repository"
)

// Fakes em memória das portas de persistência, com a mesma semântica dos
// adaptadores PostgreSQL: GetByID devolve (nil, nil) no miss e Delete de id
// inexistente não é erro.

type clienteRepoFake struct {
	clientes map[string]entity.Cliente
	ordem    []string
}

var _ repository.ClienteRepository = (*clienteRepoFake)(nil)

func newClienteRepoFake() *clienteRepoFake {
	return &clienteRepoFake{clientes: make(map[string]entity.Cliente)}
}

func (f *clienteRepoFake) Create(c *entity.Cliente) error {
	f.clientes[c.ID] = *c
	f.ordem = append(f.ordem, c.ID)
	return nil
}

func (f *clienteRepoFake) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *clienteRepoFake) ListAll() ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(f.ordem))
	for _, id := range f.ordem {
		c := f.clientes[id]
		out = append(out, &c)
	}
	return out, nil
}

func (f *clienteRepoFake) Update(c *entity.Cliente) error {
	f.clientes[c.ID] = *c
	return nil
}

func (f *clienteRepoFake) Delete(id string) error {
	delete(f.clientes, id)
	for i, v := range f.ordem {
		if v == id {
			f.ordem = append(f.ordem[:i], f.ordem[i+1:]...)
			break
		}
	}
	return nil
}

type propostaRepoFake struct {
	propostas []entity.PropostaCredito
}

var _ repository.PropostaRepository = (*propostaRepoFake)(nil)

func newPropostaRepoFake() *propostaRepoFake { return &propostaRepoFake{} }

func (f *propostaRepoFake) Create(p *entity.PropostaCredito) error {
	f.propostas = append(f.propostas, *p)
	return nil
}

func (f *propostaRepoFake) GetByID(id string) (*entity.PropostaCredito, error) {
	for i := range f.propostas {
		if f.propostas[i].ID == id {
			p := f.propostas[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *propostaRepoFake) ListByCliente(clienteID string) ([]*entity.PropostaCredito, error) {
	var out []*entity.PropostaCredito
	for i := range f.propostas {
		if f.propostas[i].ClienteID == clienteID {
			p := f.propostas[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

// seedCliente grava um cliente direto no fake e devolve a entidade gravada.
func seedCliente(f *clienteRepoFake, id, nome, cpf, renda string) entity.Cliente {
	c := entity.Cliente{
		ID:          id,
		Nome:        nome,
		CPF:         cpf,
		RendaMensal: decimal.RequireFromString(renda),
	}
	_ = f.Create(&c)
	return c
}
