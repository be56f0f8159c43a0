// Package present holds the pure display-formatting rules for the
// marketplace: price rendering, pricing-kind labels, capability icons,
// and registration dates. Everything here is a total function over its
// input; unknown values fall back to a defensive default instead of
// erroring.
package present

import (
	"strconv"
	"time"

	"github.com/solagora/agentmarket/internal/domain"
)

// Icon is a semantic icon category resolved by the rendering layer.
type Icon string

const (
	IconShield   Icon = "shield"
	IconCode     Icon = "code"
	IconAnalysis Icon = "analysis"
	IconCoins    Icon = "coins"
	IconTrending Icon = "trending"
	IconBot      Icon = "bot"
	IconSearch   Icon = "search"
	IconMessage  Icon = "message"
	IconImage    Icon = "image"
)

// capabilityIcons is the closed capability-to-icon table. Tags are
// free text, so anything outside the table gets the generic analysis
// glyph rather than being rejected.
var capabilityIcons = map[string]Icon{
	"Security":         IconShield,
	"Code Generation":  IconCode,
	"Data Analysis":    IconAnalysis,
	"DeFi":             IconCoins,
	"Trading":          IconTrending,
	"Automation":       IconBot,
	"Research":         IconSearch,
	"Content Writing":  IconMessage,
	"Image Generation": IconImage,
	"Smart Contracts":  IconCode,
	"Market Analysis":  IconTrending,
}

// CapabilityIcon resolves a capability tag to its icon category.
func CapabilityIcon(tag string) Icon {
	if icon, ok := capabilityIcons[tag]; ok {
		return icon
	}
	return IconAnalysis
}

// FormatPrice renders a SOL amount for display. Amounts below 0.01 SOL
// are rescaled to thousands of lamports so they stay readable; the
// threshold and the x1000 scale are fixed presentation rules.
func FormatPrice(price float64) string {
	if price < 0.01 {
		return strconv.FormatFloat(price*1000, 'f', -1, 64) + "k lamports"
	}
	return strconv.FormatFloat(price, 'f', -1, 64) + " SOL"
}

// PricingLabel maps a pricing kind to its billing-period label.
// Unrecognized kinds fall back to the per-query label.
func PricingLabel(kind domain.PricingKind) string {
	switch kind {
	case domain.PricingSubscription:
		return "per month"
	case domain.PricingCustom:
		return "custom pricing"
	default:
		return "per query"
	}
}

// FormatRegistrationDate renders a long month-day-year date.
func FormatRegistrationDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
