package ethereum

import "github.com/ethereum/go-ethereum/common"

// Signer is the handle for the wallet account that signs transactions.
// Keys stay in the wallet; the signer only names the account.
type Signer struct {
	address common.Address
}

// NewSigner returns a signer for address
func NewSigner(address common.Address) *Signer {
	return &Signer{address: address}
}

// Address returns the signing account
func (s *Signer) Address() common.Address {
	return s.address
}
