package testutils

import (
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

// chainService serves the eth namespace subset ethclient needs for ChainID.
type chainService struct {
	chainID uint64
}

func (s *chainService) ChainId() *hexutil.Big {
	return (*hexutil.Big)(new(big.Int).SetUint64(s.chainID))
}

// NewChainIDServer starts a JSON-RPC endpoint over HTTP that reports chainID for eth_chainId.
func NewChainIDServer(t *testing.T, chainID uint64) *httptest.Server {
	t.Helper()
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", &chainService{chainID: chainID}))

	srv := httptest.NewServer(server)
	t.Cleanup(func() {
		srv.Close()
		server.Stop()
	})
	return srv
}
