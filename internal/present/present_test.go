package present

import (
	"testing"
	"time"

	"github.com/solagora/agentmarket/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0.005, "5k lamports"},
		{0.001, "1k lamports"},
		{0.0099, "9.9k lamports"},
		{0.01, "0.01 SOL"},
		{0.5, "0.5 SOL"},
		{1, "1 SOL"},
		{12.5, "12.5 SOL"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestPricingLabel(t *testing.T) {
	tests := []struct {
		kind domain.PricingKind
		want string
	}{
		{domain.PricingPerQuery, "per query"},
		{domain.PricingSubscription, "per month"},
		{domain.PricingCustom, "custom pricing"},
		{domain.PricingKind("unknown"), "per query"},
		{domain.PricingKind(""), "per query"},
	}
	for _, tt := range tests {
		if got := PricingLabel(tt.kind); got != tt.want {
			t.Errorf("PricingLabel(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCapabilityIcon(t *testing.T) {
	if got := CapabilityIcon("Security"); got != IconShield {
		t.Errorf("expected shield icon for Security, got %q", got)
	}
	if got := CapabilityIcon("DeFi"); got != IconCoins {
		t.Errorf("expected coins icon for DeFi, got %q", got)
	}
	if got := CapabilityIcon("Underwater Basket Weaving"); got != IconAnalysis {
		t.Errorf("expected generic analysis icon for unknown tag, got %q", got)
	}
}

func TestFormatRegistrationDate(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := FormatRegistrationDate(ts); got != "March 7, 2024" {
		t.Errorf("expected 'March 7, 2024', got %q", got)
	}
}
