package domain

import (
	"testing"
	"time"
)

func sampleAgent() *Agent {
	return &Agent{
		ID:           "agent-1",
		AgentID:      "mint-abc",
		Name:         "Auditor",
		Description:  "Audits programs",
		Capabilities: []string{"Security", "Smart Contracts"},
		Pricing: Pricing{
			Type:     PricingPerQuery,
			Price:    0.05,
			Currency: "SOL",
		},
		CreatorWallet: "Wabc12345xyz",
		Rating:        Rating{Average: 4.5, Count: 12},
		CreatedAt:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestToHireRequest(t *testing.T) {
	a := sampleAgent()
	hr := ToHireRequest(a)

	if hr.ID != a.ID {
		t.Errorf("expected id %s, got %s", a.ID, hr.ID)
	}
	if hr.Creator != "Wabc1234..." {
		t.Errorf("expected truncated creator 'Wabc1234...', got %q", hr.Creator)
	}
	if hr.CreatorAddress != "Wabc12345xyz" {
		t.Errorf("expected full creator address, got %q", hr.CreatorAddress)
	}
	if hr.Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", hr.Rating)
	}
	if hr.TotalServices != 12 {
		t.Errorf("expected 12 total services, got %d", hr.TotalServices)
	}
	if hr.ResponseTime != "<30s" {
		t.Errorf("expected response time placeholder, got %q", hr.ResponseTime)
	}
	if !hr.IsActive {
		t.Error("expected hire request to be active")
	}
	if hr.NFTMint != "mint-abc" {
		t.Errorf("expected nft mint 'mint-abc', got %q", hr.NFTMint)
	}
}

func TestToHireRequest_ShortWallet(t *testing.T) {
	a := sampleAgent()
	a.CreatorWallet = "W1"

	hr := ToHireRequest(a)
	if hr.Creator != "W1" {
		t.Errorf("expected short wallet untouched, got %q", hr.Creator)
	}
	if hr.CreatorAddress != "W1" {
		t.Errorf("expected creator address 'W1', got %q", hr.CreatorAddress)
	}
}

func TestToHireRequest_ZeroValueAgent(t *testing.T) {
	hr := ToHireRequest(&Agent{})
	if hr.ResponseTime != "<30s" || !hr.IsActive {
		t.Error("transform must be total over any well-formed agent")
	}
}
