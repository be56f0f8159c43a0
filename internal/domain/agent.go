package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// PricingKind tags the three supported pricing models.
type PricingKind string

const (
	PricingPerQuery     PricingKind = "per_query"
	PricingSubscription PricingKind = "subscription"
	PricingCustom       PricingKind = "custom"
)

// Pricing carries the price in the platform token. Price is enforced
// as a finite value > 0 at registration.
type Pricing struct {
	Type     PricingKind `json:"type"`
	Price    float64     `json:"price"`
	Currency string      `json:"currency"`
}

// Rating is the denormalized reputation summary for an agent.
// Average is in the 0-5 range; Count never goes negative.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// FlexID is an opaque string identifier. Some upstream catalogs emit
// numeric-looking ids as JSON numbers; FlexID accepts both and all
// comparisons happen on the string form.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) String() string { return string(id) }

// Agent is a registered service listing. Agents are created once via
// registration and read many times by the directory; nothing mutates
// them in place on this side of the API.
type Agent struct {
	ID            FlexID    `json:"id"`
	AgentID       string    `json:"agentId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Capabilities  []string  `json:"capabilities"`
	Pricing       Pricing   `json:"pricing"`
	Endpoint      string    `json:"endpoint,omitempty"`
	CreatorWallet string    `json:"creatorWallet"`
	Rating        Rating    `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Registration limits carried over from the on-chain registry program.
const (
	MaxNameLen        = 50
	MaxDescriptionLen = 500
	MaxEndpointLen    = 200
	MaxCapabilities   = 10
)
