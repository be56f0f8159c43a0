package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/solagora/agentmarket/internal/domain"
	"github.com/solagora/agentmarket/internal/store"
	"go.uber.org/zap"
)

// mockAgentStore implements domain.AgentStore for testing.
type mockAgentStore struct {
	agents []domain.Agent
}

func (m *mockAgentStore) Create(ctx context.Context, a *domain.Agent) error {
	for _, existing := range m.agents {
		if existing.AgentID == a.AgentID {
			return store.ErrConflict
		}
	}
	m.agents = append(m.agents, *a)
	return nil
}

func (m *mockAgentStore) List(ctx context.Context, page, limit int) ([]domain.Agent, error) {
	start := (page - 1) * limit
	if start >= len(m.agents) {
		return []domain.Agent{}, nil
	}
	end := start + limit
	if end > len(m.agents) {
		end = len(m.agents)
	}
	return m.agents[start:end], nil
}

func (m *mockAgentStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.agents)), nil
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:          "Bot",
		Description:   "Does X",
		Capabilities:  []string{"Security"},
		Pricing:       domain.Pricing{Type: domain.PricingPerQuery, Price: 0.01, Currency: "SOL"},
		CreatorWallet: "Wabc12345xyz",
	}
}

func newTestService() (*AgentService, *mockAgentStore) {
	m := &mockAgentStore{}
	return NewAgentService(m, zap.NewNop()), m
}

func TestRegister(t *testing.T) {
	s, m := newTestService()

	agent, err := s.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if agent.ID == "" {
		t.Error("expected generated id")
	}
	if agent.AgentID == "" {
		t.Error("expected generated mint identifier")
	}
	if agent.CreatedAt.IsZero() {
		t.Error("expected server timestamp")
	}
	if agent.Rating.Average != 0 || agent.Rating.Count != 0 {
		t.Error("new agents start with a zero rating")
	}
	if len(m.agents) != 1 {
		t.Fatalf("expected agent persisted, store holds %d", len(m.agents))
	}
}

func TestRegister_WalletPrecondition(t *testing.T) {
	s, m := newTestService()

	in := validInput()
	in.CreatorWallet = "  "
	// Even with every field invalid, the wallet check fires first.
	in.Name = ""

	_, err := s.Register(context.Background(), in)
	if !errors.Is(err, ErrWalletRequired) {
		t.Fatalf("expected ErrWalletRequired, got %v", err)
	}
	if len(m.agents) != 0 {
		t.Error("nothing may be persisted without a wallet")
	}
}

func TestRegister_ValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RegisterInput)
		wantField string
	}{
		{"empty name", func(in *RegisterInput) { in.Name = " " }, "name"},
		{"name too long", func(in *RegisterInput) { in.Name = strings.Repeat("x", domain.MaxNameLen+1) }, "name"},
		{"empty description", func(in *RegisterInput) { in.Description = "" }, "description"},
		{"description too long", func(in *RegisterInput) { in.Description = strings.Repeat("x", domain.MaxDescriptionLen+1) }, "description"},
		{"zero price", func(in *RegisterInput) { in.Pricing.Price = 0 }, "price"},
		{"negative price", func(in *RegisterInput) { in.Pricing.Price = -0.5 }, "price"},
		{"no capabilities", func(in *RegisterInput) { in.Capabilities = nil }, "capabilities"},
		{"blank capabilities", func(in *RegisterInput) { in.Capabilities = []string{" ", ""} }, "capabilities"},
		{"too many capabilities", func(in *RegisterInput) {
			in.Capabilities = make([]string, domain.MaxCapabilities+1)
			for i := range in.Capabilities {
				in.Capabilities[i] = strings.Repeat("c", i+1)
			}
		}, "capabilities"},
		{"endpoint too long", func(in *RegisterInput) { in.Endpoint = "https://" + strings.Repeat("x", domain.MaxEndpointLen) }, "endpoint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService()
			in := validInput()
			tt.mutate(&in)

			_, err := s.Register(context.Background(), in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
			if len(m.agents) != 0 {
				t.Error("invalid input must not be persisted")
			}
		})
	}
}

func TestRegister_NormalizesCapabilities(t *testing.T) {
	s, _ := newTestService()

	in := validInput()
	in.Capabilities = []string{" Security ", "Security", "", "Trading"}

	agent, err := s.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"Security", "Trading"}
	if len(agent.Capabilities) != len(want) {
		t.Fatalf("expected %v, got %v", want, agent.Capabilities)
	}
	for i := range want {
		if agent.Capabilities[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, agent.Capabilities)
		}
	}
}

func TestRegister_DefaultsPricing(t *testing.T) {
	s, _ := newTestService()

	in := validInput()
	in.Pricing = domain.Pricing{Price: 0.05}

	agent, err := s.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if agent.Pricing.Type != domain.PricingPerQuery {
		t.Errorf("expected per_query default, got %q", agent.Pricing.Type)
	}
	if agent.Pricing.Currency != "SOL" {
		t.Errorf("expected SOL default, got %q", agent.Pricing.Currency)
	}
}

func TestList_ClampsPaging(t *testing.T) {
	s, m := newTestService()
	for i := 0; i < 3; i++ {
		in := validInput()
		in.Name = "Bot" + strings.Repeat("!", i+1)
		if _, err := s.Register(context.Background(), in); err != nil {
			t.Fatalf("seed register: %v", err)
		}
	}

	agents, err := s.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(agents) != 3 {
		t.Errorf("expected defaults to return all 3 agents, got %d", len(agents))
	}

	agents, err = s.List(context.Background(), 1, 10000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(agents) != len(m.agents) {
		t.Errorf("oversized limit must clamp, not fail: got %d agents", len(agents))
	}
}
