package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solagora/agentmarket/internal/domain"
)

// AgentStore is the Postgres-backed agent directory.
type AgentStore struct {
	db *pgxpool.Pool
}

func NewAgentStore(db *pgxpool.Pool) *AgentStore {
	return &AgentStore{db: db}
}

// InitSchema creates the agents table if it does not exist yet.
func (s *AgentStore) InitSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS agents (
			id             TEXT PRIMARY KEY,
			agent_id       TEXT NOT NULL UNIQUE,
			name           TEXT NOT NULL,
			description    TEXT NOT NULL,
			capabilities   TEXT[] NOT NULL DEFAULT '{}',
			pricing_type   TEXT NOT NULL,
			price          DOUBLE PRECISION NOT NULL,
			currency       TEXT NOT NULL,
			endpoint       TEXT NOT NULL DEFAULT '',
			creator_wallet TEXT NOT NULL,
			rating_avg     DOUBLE PRECISION NOT NULL DEFAULT 0,
			rating_count   INTEGER NOT NULL DEFAULT 0,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *AgentStore) Create(ctx context.Context, a *domain.Agent) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO agents (id, agent_id, name, description, capabilities,
		                     pricing_type, price, currency, endpoint,
		                     creator_wallet, rating_avg, rating_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID.String(), a.AgentID, a.Name, a.Description, a.Capabilities,
		string(a.Pricing.Type), a.Pricing.Price, a.Pricing.Currency, a.Endpoint,
		a.CreatorWallet, a.Rating.Average, a.Rating.Count, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

// List returns one page of agents in registration order.
func (s *AgentStore) List(ctx context.Context, page, limit int) ([]domain.Agent, error) {
	offset := (page - 1) * limit
	rows, err := s.db.Query(ctx,
		`SELECT id, agent_id, name, description, capabilities,
		        pricing_type, price, currency, endpoint,
		        creator_wallet, rating_avg, rating_count, created_at
		 FROM agents
		 ORDER BY created_at, id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := []domain.Agent{}
	for rows.Next() {
		var a domain.Agent
		var id, pricingType string
		err := rows.Scan(&id, &a.AgentID, &a.Name, &a.Description, &a.Capabilities,
			&pricingType, &a.Pricing.Price, &a.Pricing.Currency, &a.Endpoint,
			&a.CreatorWallet, &a.Rating.Average, &a.Rating.Count, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		a.ID = domain.FlexID(id)
		a.Pricing.Type = domain.PricingKind(pricingType)
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (s *AgentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM agents`).Scan(&n)
	return n, err
}
