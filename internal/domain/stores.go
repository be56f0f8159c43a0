package domain

import "context"

type AgentStore interface {
	Create(ctx context.Context, a *Agent) error
	List(ctx context.Context, page, limit int) ([]Agent, error)
	Count(ctx context.Context) (int64, error)
}
