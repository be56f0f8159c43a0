package domain

// HireRequest is the reduced agent view needed to initiate a hire
// transaction. Creator holds the truncated wallet for display; the full
// address is preserved in CreatorAddress for the transaction itself.
type HireRequest struct {
	ID             FlexID   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Capabilities   []string `json:"capabilities"`
	Pricing        Pricing  `json:"pricing"`
	Rating         float64  `json:"rating"`
	TotalServices  int      `json:"totalServices"`
	Creator        string   `json:"creator"`
	CreatorAddress string   `json:"creatorAddress"`
	ResponseTime   string   `json:"responseTime"`
	IsActive       bool     `json:"isActive"`
	NFTMint        string   `json:"nftMint"`
}

// ToHireRequest maps a stored Agent to its hire view. The transform is
// total: it has no failure mode over a well-formed Agent.
func ToHireRequest(a *Agent) HireRequest {
	return HireRequest{
		ID:             a.ID,
		Name:           a.Name,
		Description:    a.Description,
		Capabilities:   a.Capabilities,
		Pricing:        a.Pricing,
		Rating:         a.Rating.Average,
		TotalServices:  a.Rating.Count,
		Creator:        truncateAddress(a.CreatorWallet),
		CreatorAddress: a.CreatorWallet,
		ResponseTime:   "<30s",
		IsActive:       true,
		NFTMint:        a.AgentID,
	}
}

// truncateAddress shortens a wallet address to its first 8 characters
// plus an ellipsis. Addresses at or under 8 characters pass through.
func truncateAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:8] + "..."
}
