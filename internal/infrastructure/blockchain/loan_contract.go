// Package blockchain provides read-only access to the Solvi loan smart
// contract. Transaction submission happens wallet-side; the backend only
// verifies deployment and reads loan counters for the status endpoint.
package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	domainerrors "pay-chain.backend/internal/domain/errors"
)

// View function selectors on the Solvi contract. The original deployment
// exposes the counter under two names; both are tried in order.
var loanCounterSelectors = [][]byte{
	crypto.Keccak256([]byte("obtenerContadorPrestamos()"))[:4],
	crypto.Keccak256([]byte("contadorPrestamos()"))[:4],
}

// ContractStatus reports the deployment state of the loan contract
type ContractStatus struct {
	Address   string `json:"address"`
	ChainID   string `json:"chainId"`
	Deployed  bool   `json:"deployed"`
	LoanCount uint64 `json:"loanCount"`
}

// LoanContractClient reads the Solvi loan contract over an EVM RPC endpoint
type LoanContractClient struct {
	client  *ethclient.Client
	address common.Address
	chainID *big.Int

	// Injectable seams so unit tests run without network sockets.
	testCallView func(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	testCodeAt   func(ctx context.Context, account common.Address) ([]byte, error)
}

// NewLoanContractClient dials the RPC endpoint and binds the contract address
func NewLoanContractClient(rpcURL, contractAddress string) (*LoanContractClient, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, domainerrors.ErrContractUnavailable
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, err
	}

	chainID, err := client.ChainID(context.Background())
	if err != nil {
		client.Close()
		return nil, err
	}

	return &LoanContractClient{
		client:  client,
		address: common.HexToAddress(contractAddress),
		chainID: chainID,
	}, nil
}

// NewLoanContractClientWithSeams builds a client with injected call/code
// implementations. Intended for unit tests.
func NewLoanContractClientWithSeams(
	contractAddress string,
	chainID *big.Int,
	callView func(ctx context.Context, to common.Address, data []byte) ([]byte, error),
	codeAt func(ctx context.Context, account common.Address) ([]byte, error),
) *LoanContractClient {
	if chainID == nil {
		chainID = big.NewInt(80002)
	}
	return &LoanContractClient{
		address:      common.HexToAddress(contractAddress),
		chainID:      chainID,
		testCallView: callView,
		testCodeAt:   codeAt,
	}
}

// ChainID returns the connected chain id
func (c *LoanContractClient) ChainID() *big.Int {
	return c.chainID
}

// Status checks whether the contract is deployed and reads the loan counter.
// A missing counter view leaves LoanCount at 0 without failing the check.
func (c *LoanContractClient) Status(ctx context.Context) (*ContractStatus, error) {
	code, err := c.codeAt(ctx, c.address)
	if err != nil {
		return nil, err
	}

	status := &ContractStatus{
		Address:  c.address.Hex(),
		ChainID:  c.chainID.String(),
		Deployed: len(code) > 0,
	}
	if !status.Deployed {
		return status, nil
	}

	for _, selector := range loanCounterSelectors {
		result, err := c.callView(ctx, c.address, selector)
		if err != nil || len(result) == 0 {
			continue
		}
		status.LoanCount = new(big.Int).SetBytes(result).Uint64()
		break
	}

	return status, nil
}

func (c *LoanContractClient) callView(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	if c.testCallView != nil {
		return c.testCallView(ctx, to, data)
	}
	msg := ethereum.CallMsg{
		To:   &to,
		Data: data,
	}
	return c.client.CallContract(ctx, msg, nil)
}

func (c *LoanContractClient) codeAt(ctx context.Context, account common.Address) ([]byte, error) {
	if c.testCodeAt != nil {
		return c.testCodeAt(ctx, account)
	}
	return c.client.CodeAt(ctx, account, nil)
}

// Close closes the underlying RPC connection
func (c *LoanContractClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
