package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fictcred/credito-api/internal/domain/entity"
	"github.com/fictcred/credito-api/internal/domain/repository"
)

var _ repository.PropostaRepository = (*PropostaRepo)(nil)

// PropostaRepo implementação de PropostaRepository sobre PostgreSQL.
type PropostaRepo struct {
	q Querier
}

// NewPropostaRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewPropostaRepository(q Querier) *PropostaRepo {
	return &PropostaRepo{q: q}
}

// Create persiste uma nova proposta já avaliada (status e data carimbados).
func (r *PropostaRepo) Create(proposta *entity.PropostaCredito) error {
	query := `
		INSERT INTO propostas (id, valor_solicitado, numero_parcelas, status, data_criacao, cliente_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		proposta.ID, proposta.ValorSolicitado, proposta.NumeroParcelas,
		string(proposta.Status), proposta.DataCriacao, proposta.ClienteID,
	)
	if err != nil {
		return fmt.Errorf("insert proposta: %w", err)
	}
	return nil
}

// GetByID obtém uma proposta por id. Retorna (nil, nil) quando não existe.
func (r *PropostaRepo) GetByID(id string) (*entity.PropostaCredito, error) {
	query := `
		SELECT id, valor_solicitado, numero_parcelas, status, data_criacao, cliente_id
		FROM propostas WHERE id = $1`
	var p entity.PropostaCredito
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ValorSolicitado, &p.NumeroParcelas, &p.Status, &p.DataCriacao, &p.ClienteID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposta: %w", err)
	}
	return &p, nil
}

// ListByCliente lista as propostas do cliente na ordem de criação.
func (r *PropostaRepo) ListByCliente(clienteID string) ([]*entity.PropostaCredito, error) {
	query := `
		SELECT id, valor_solicitado, numero_parcelas, status, data_criacao, cliente_id
		FROM propostas WHERE cliente_id = $1 ORDER BY data_criacao`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list propostas: %w", err)
	}
	defer rows.Close()
	var list []*entity.PropostaCredito
	for rows.Next() {
		var p entity.PropostaCredito
		if err := rows.Scan(&p.ID, &p.ValorSolicitado, &p.NumeroParcelas, &p.Status, &p.DataCriacao, &p.ClienteID); err != nil {
			return nil, fmt.Errorf("scan proposta: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
