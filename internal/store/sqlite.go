package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/solagora/agentmarket/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteAgentStore is the single-binary store variant for local and
// dev deployments. Capabilities are stored as a JSON array and
// timestamps as RFC 3339 strings.
type SQLiteAgentStore struct {
	db *sql.DB
}

// NewSQLiteAgentStore opens (creating if needed) the database at
// dbPath and initializes the schema.
func NewSQLiteAgentStore(ctx context.Context, dbPath string) (*SQLiteAgentStore, error) {
	if dbPath == "" {
		dbPath = "./data/agentmarket.db"
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	s := &SQLiteAgentStore{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteAgentStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS agents (
			id             TEXT PRIMARY KEY,
			agent_id       TEXT NOT NULL UNIQUE,
			name           TEXT NOT NULL,
			description    TEXT NOT NULL,
			capabilities   TEXT NOT NULL DEFAULT '[]',
			pricing_type   TEXT NOT NULL,
			price          REAL NOT NULL,
			currency       TEXT NOT NULL,
			endpoint       TEXT NOT NULL DEFAULT '',
			creator_wallet TEXT NOT NULL,
			rating_avg     REAL NOT NULL DEFAULT 0,
			rating_count   INTEGER NOT NULL DEFAULT 0,
			created_at     TEXT NOT NULL
		)`)
	return err
}

func (s *SQLiteAgentStore) Close() error { return s.db.Close() }

func (s *SQLiteAgentStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteAgentStore) Create(ctx context.Context, a *domain.Agent) error {
	caps, err := json.Marshal(a.Capabilities)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO agents (id, agent_id, name, description, capabilities,
		                     pricing_type, price, currency, endpoint,
		                     creator_wallet, rating_avg, rating_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.AgentID, a.Name, a.Description, string(caps),
		string(a.Pricing.Type), a.Pricing.Price, a.Pricing.Currency, a.Endpoint,
		a.CreatorWallet, a.Rating.Average, a.Rating.Count,
		a.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return err
}

func (s *SQLiteAgentStore) List(ctx context.Context, page, limit int) ([]domain.Agent, error) {
	offset := (page - 1) * limit
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, agent_id, name, description, capabilities,
		        pricing_type, price, currency, endpoint,
		        creator_wallet, rating_avg, rating_count, created_at
		 FROM agents
		 ORDER BY created_at, id
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := []domain.Agent{}
	for rows.Next() {
		var a domain.Agent
		var id, caps, pricingType, createdAt string
		err := rows.Scan(&id, &a.AgentID, &a.Name, &a.Description, &caps,
			&pricingType, &a.Pricing.Price, &a.Pricing.Currency, &a.Endpoint,
			&a.CreatorWallet, &a.Rating.Average, &a.Rating.Count, &createdAt)
		if err != nil {
			return nil, err
		}
		a.ID = domain.FlexID(id)
		a.Pricing.Type = domain.PricingKind(pricingType)
		if err := json.Unmarshal([]byte(caps), &a.Capabilities); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (s *SQLiteAgentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM agents`).Scan(&n)
	return n, err
}
