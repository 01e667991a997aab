package blockchain

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	domainerrors "pay-chain.backend/internal/domain/errors"
)

const contractAddr = "0xf8e81D47203A594245E36C48e151709F0C19fBe8"

func TestNewLoanContractClient_RejectsBadAddress(t *testing.T) {
	_, err := NewLoanContractClient("http://localhost:8545", "not-an-address")
	assert.ErrorIs(t, err, domainerrors.ErrContractUnavailable)
}

func TestLoanContractClient_Status_NotDeployed(t *testing.T) {
	client := NewLoanContractClientWithSeams(contractAddr, nil,
		func(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
			t.Fatal("no view call expected for an undeployed contract")
			return nil, nil
		},
		func(ctx context.Context, account common.Address) ([]byte, error) {
			return nil, nil
		},
	)

	status, err := client.Status(context.Background())
	assert.NoError(t, err)
	assert.False(t, status.Deployed)
	assert.Equal(t, uint64(0), status.LoanCount)
	assert.Equal(t, "80002", status.ChainID)
	assert.Equal(t, common.HexToAddress(contractAddr).Hex(), status.Address)
}

func TestLoanContractClient_Status_ReadsCounter(t *testing.T) {
	primary := crypto.Keccak256([]byte("obtenerContadorPrestamos()"))[:4]

	client := NewLoanContractClientWithSeams(contractAddr, big.NewInt(137),
		func(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
			if bytes.Equal(data, primary) {
				return common.LeftPadBytes(big.NewInt(42).Bytes(), 32), nil
			}
			return nil, errors.New("unknown selector")
		},
		func(ctx context.Context, account common.Address) ([]byte, error) {
			return []byte{0x60, 0x80}, nil
		},
	)

	status, err := client.Status(context.Background())
	assert.NoError(t, err)
	assert.True(t, status.Deployed)
	assert.Equal(t, uint64(42), status.LoanCount)
	assert.Equal(t, "137", status.ChainID)
}

func TestLoanContractClient_Status_FallbackSelector(t *testing.T) {
	fallback := crypto.Keccak256([]byte("contadorPrestamos()"))[:4]

	client := NewLoanContractClientWithSeams(contractAddr, nil,
		func(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
			if bytes.Equal(data, fallback) {
				return common.LeftPadBytes(big.NewInt(7).Bytes(), 32), nil
			}
			return nil, errors.New("execution reverted")
		},
		func(ctx context.Context, account common.Address) ([]byte, error) {
			return []byte{0x60}, nil
		},
	)

	status, err := client.Status(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), status.LoanCount)
}

func TestLoanContractClient_Status_MissingCounterStaysZero(t *testing.T) {
	client := NewLoanContractClientWithSeams(contractAddr, nil,
		func(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
			return nil, errors.New("execution reverted")
		},
		func(ctx context.Context, account common.Address) ([]byte, error) {
			return []byte{0x60}, nil
		},
	)

	status, err := client.Status(context.Background())
	assert.NoError(t, err)
	assert.True(t, status.Deployed)
	assert.Equal(t, uint64(0), status.LoanCount)
}

func TestLoanContractClient_Status_CodeAtError(t *testing.T) {
	client := NewLoanContractClientWithSeams(contractAddr, nil,
		nil,
		func(ctx context.Context, account common.Address) ([]byte, error) {
			return nil, errors.New("rpc timeout")
		},
	)

	_, err := client.Status(context.Background())
	assert.Error(t, err)
}
