// Package rpctest provides an in-process json-rpc endpoint for tests.
package rpctest

import (
	"fmt"
	"math/big"
	"net/http/httptest"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

type CallArgs struct {
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Data  hexutil.Bytes   `json:"data"`
	Input hexutil.Bytes   `json:"input"`

	// Block tag the call was made at.
	Block string `json:"-"`
}

func (a *CallArgs) CallData() []byte {
	if len(a.Input) > 0 {
		return a.Input
	}

	return a.Data
}

// CallHandler answers eth_call requests.
type CallHandler func(args CallArgs) ([]byte, error)

type Server struct {
	*httptest.Server
	rpcServer *rpc.Server

	mutex sync.Mutex
	calls []CallArgs
}

type ethService struct {
	server  *Server
	chainID uint64
	handler CallHandler
}

func (s *ethService) ChainId() *hexutil.Big { //nolint:revive,stylecheck // rpc method name
	return (*hexutil.Big)(new(big.Int).SetUint64(s.chainID))
}

func (s *ethService) BlockNumber() hexutil.Uint64 {
	return hexutil.Uint64(1)
}

func (s *ethService) Call(args CallArgs, block string) (hexutil.Bytes, error) {
	args.Block = block

	s.server.mutex.Lock()
	s.server.calls = append(s.server.calls, args)
	s.server.mutex.Unlock()

	if s.handler == nil {
		return nil, fmt.Errorf("execution reverted")
	}

	return s.handler(args)
}

type web3Service struct{}

func (s *web3Service) ClientVersion() string {
	return "rpctest/v1.0.0"
}

// NewServer starts a json-rpc endpoint serving eth_chainId, eth_blockNumber, eth_call and web3_clientVersion.
func NewServer(chainID uint64, handler CallHandler) (*Server, error) {
	server := &Server{
		rpcServer: rpc.NewServer(),
	}

	if err := server.rpcServer.RegisterName("eth", &ethService{
		server:  server,
		chainID: chainID,
		handler: handler,
	}); err != nil {
		return nil, err
	}

	if err := server.rpcServer.RegisterName("web3", &web3Service{}); err != nil {
		return nil, err
	}

	server.Server = httptest.NewServer(server.rpcServer)

	return server, nil
}

func (s *Server) Close() {
	s.Server.Close()
	s.rpcServer.Stop()
}

// Calls returns all eth_call requests received so far.
func (s *Server) Calls() []CallArgs {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	calls := make([]CallArgs, len(s.calls))
	copy(calls, s.calls)

	return calls
}
