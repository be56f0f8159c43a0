package domain

// Identity is the externally supplied connected-wallet identity that
// gates registration. The marketplace treats it as a capability check,
// not something it manages: no signing, no address-format validation.
type Identity interface {
	Address() string
	Connected() bool
}

// WalletIdentity is the plain value implementation of Identity used by
// the CLI and tests.
type WalletIdentity struct {
	PublicKey   string
	IsConnected bool
}

func (w WalletIdentity) Address() string { return w.PublicKey }
func (w WalletIdentity) Connected() bool { return w.IsConnected }
