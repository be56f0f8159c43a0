package client

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/solagora/agentmarket/internal/domain"
)

// DraftState tracks the registration workflow. A draft starts in
// StateEditing; validation failures and rejected submissions return it
// there with Err set, so the form stays usable after any failure.
type DraftState string

const (
	StateEditing    DraftState = "editing"
	StateValidating DraftState = "validating"
	StateSubmitting DraftState = "submitting"
	StateSucceeded  DraftState = "succeeded"
	StateFailed     DraftState = "failed"
)

// RegistrationDraft is the transient new-agent form. It is never
// persisted; callers discard it after a successful submit.
type RegistrationDraft struct {
	Name        string
	Description string
	Endpoint    string
	Price       string

	capabilities []string
	state        DraftState
	lastErr      string
}

// NewDraft returns an empty draft in the editing state.
func NewDraft() *RegistrationDraft {
	return &RegistrationDraft{state: StateEditing}
}

// State reports the workflow state of the draft.
func (d *RegistrationDraft) State() DraftState {
	if d.state == "" {
		return StateEditing
	}
	return d.state
}

// Err returns the message from the most recent validation or
// submission failure, empty if none.
func (d *RegistrationDraft) Err() string { return d.lastErr }

// AddCapability appends a tag to the ordered capability set. The tag
// is trimmed first; empty strings and duplicates are no-ops, so the
// set keeps insertion order with no repeats.
func (d *RegistrationDraft) AddCapability(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, existing := range d.capabilities {
		if existing == tag {
			return
		}
	}
	d.capabilities = append(d.capabilities, tag)
}

// RemoveCapability filters a tag out of the set.
func (d *RegistrationDraft) RemoveCapability(tag string) {
	kept := d.capabilities[:0]
	for _, existing := range d.capabilities {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	d.capabilities = kept
}

// Capabilities returns a copy of the ordered capability set.
func (d *RegistrationDraft) Capabilities() []string {
	out := make([]string, len(d.capabilities))
	copy(out, d.capabilities)
	return out
}

// Validate applies the form rules in a fixed order and returns the
// first violation. It does not touch the network.
func (d *RegistrationDraft) Validate() *ValidationError {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Message: "agent name is required"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return &ValidationError{Field: "price", Message: "price must be a number greater than 0"}
	}
	if len(d.capabilities) == 0 {
		return &ValidationError{Field: "capabilities", Message: "add at least one capability"}
	}
	return nil
}

type registerRequest struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Capabilities  []string       `json:"capabilities"`
	Pricing       domain.Pricing `json:"pricing"`
	Endpoint      string         `json:"endpoint,omitempty"`
	CreatorWallet string         `json:"creatorWallet"`
}

type registerResponse struct {
	Agent domain.Agent `json:"agent"`
}

// RegisterResult reports a successful registration. AgentID is the
// on-chain mint identifier shown in the confirmation message.
type RegisterResult struct {
	AgentID string
}

// Submit runs the registration workflow end to end: the wallet
// precondition first, then field validation, then the POST. The wallet
// check is not a form error; an unconnected identity aborts before any
// rule runs. On failure the draft returns to editing with Err set, and
// no partial state leaks: the server either created the agent or it
// did not.
func (d *RegistrationDraft) Submit(ctx context.Context, c *Client, identity domain.Identity) (*RegisterResult, error) {
	if identity == nil || !identity.Connected() || identity.Address() == "" {
		d.state = StateEditing
		d.lastErr = ErrWalletNotConnected.Error()
		return nil, ErrWalletNotConnected
	}

	d.state = StateValidating
	if verr := d.Validate(); verr != nil {
		d.state = StateEditing
		d.lastErr = verr.Message
		return nil, verr
	}

	price, _ := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	payload := registerRequest{
		Name:         strings.TrimSpace(d.Name),
		Description:  strings.TrimSpace(d.Description),
		Capabilities: d.Capabilities(),
		Pricing: domain.Pricing{
			Type:     domain.PricingPerQuery,
			Price:    price,
			Currency: "SOL",
		},
		Endpoint:      strings.TrimSpace(d.Endpoint),
		CreatorWallet: identity.Address(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		d.state = StateEditing
		d.lastErr = err.Error()
		return nil, err
	}

	d.state = StateSubmitting
	respBody, err := c.doRequest(ctx, http.MethodPost, "/api/agents", body)
	if err != nil {
		d.state = StateFailed
		if terr, ok := err.(*TransportError); ok && terr.Message != "" {
			d.lastErr = terr.Message
		} else {
			d.lastErr = "failed to register agent"
		}
		return nil, err
	}

	var resp registerResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		d.state = StateFailed
		d.lastErr = "failed to register agent"
		return nil, err
	}

	d.state = StateSucceeded
	d.lastErr = ""
	return &RegisterResult{AgentID: resp.Agent.AgentID}, nil
}
