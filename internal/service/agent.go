package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/solagora/agentmarket/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// ErrWalletRequired rejects registrations that arrive without a
// creator wallet. The wallet is the submitter's identity, so this is a
// precondition rather than a form error.
var ErrWalletRequired = errors.New("creatorWallet is required")

// ValidationError reports the first registration rule that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RegisterInput is the registration payload after JSON decoding.
type RegisterInput struct {
	Name          string
	Description   string
	Capabilities  []string
	Pricing       domain.Pricing
	Endpoint      string
	CreatorWallet string
}

// AgentService owns directory listing and agent registration.
type AgentService struct {
	store  domain.AgentStore
	logger *zap.Logger
}

func NewAgentService(store domain.AgentStore, logger *zap.Logger) *AgentService {
	return &AgentService{store: store, logger: logger}
}

// Register validates the input, applying rules in a fixed order so the
// first violation is the one surfaced, then persists the new agent.
// The returned agent carries the generated id, mint identifier, zero
// rating, and server timestamp.
func (s *AgentService) Register(ctx context.Context, in RegisterInput) (*domain.Agent, error) {
	if strings.TrimSpace(in.CreatorWallet) == "" {
		return nil, ErrWalletRequired
	}
	if verr := validateRegistration(in); verr != nil {
		return nil, verr
	}

	pricing := in.Pricing
	if pricing.Type == "" {
		pricing.Type = domain.PricingPerQuery
	}
	if pricing.Currency == "" {
		pricing.Currency = "SOL"
	}

	agent := &domain.Agent{
		ID:            domain.FlexID(uuid.NewString()),
		AgentID:       uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		Capabilities:  normalizeCapabilities(in.Capabilities),
		Pricing:       pricing,
		Endpoint:      strings.TrimSpace(in.Endpoint),
		CreatorWallet: strings.TrimSpace(in.CreatorWallet),
		Rating:        domain.Rating{},
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Create(ctx, agent); err != nil {
		return nil, err
	}

	s.logger.Info("agent registered",
		zap.String("id", agent.ID.String()),
		zap.String("name", agent.Name),
		zap.String("creator", agent.CreatorWallet),
	)
	return agent, nil
}

// List returns one directory page. Page defaults to 1 and the limit is
// clamped to the directory ceiling.
func (s *AgentService) List(ctx context.Context, page, limit int) ([]domain.Agent, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return s.store.List(ctx, page, limit)
}

// Count reports the catalog size.
func (s *AgentService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func validateRegistration(in RegisterInput) *ValidationError {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > domain.MaxNameLen {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", domain.MaxNameLen)}
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if len(desc) > domain.MaxDescriptionLen {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", domain.MaxDescriptionLen)}
	}
	price := in.Pricing.Price
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return &ValidationError{Field: "price", Message: "price must be a number greater than 0"}
	}
	caps := normalizeCapabilities(in.Capabilities)
	if len(caps) == 0 {
		return &ValidationError{Field: "capabilities", Message: "at least one capability is required"}
	}
	if len(caps) > domain.MaxCapabilities {
		return &ValidationError{Field: "capabilities", Message: fmt.Sprintf("at most %d capabilities are allowed", domain.MaxCapabilities)}
	}
	if endpoint := strings.TrimSpace(in.Endpoint); len(endpoint) > domain.MaxEndpointLen {
		return &ValidationError{Field: "endpoint", Message: fmt.Sprintf("endpoint must be at most %d characters", domain.MaxEndpointLen)}
	}
	return nil
}

// normalizeCapabilities trims tags and drops empties and duplicates
// while preserving insertion order.
func normalizeCapabilities(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
