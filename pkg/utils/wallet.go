package utils

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddress is returned for strings that are not a hex wallet address
var ErrInvalidAddress = errors.New("invalid wallet address")

// NormalizeWalletAddress validates a hex wallet address and returns its
// EIP-55 checksummed form. Profiles and loan requests are keyed by this form
// so the same wallet never splits across case variants.
func NormalizeWalletAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", ErrInvalidAddress
	}
	return common.HexToAddress(address).Hex(), nil
}

// IsWalletAddress reports whether the string is a valid hex wallet address
func IsWalletAddress(address string) bool {
	return common.IsHexAddress(address)
}
