package blockchain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/monitor"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
	"github.com/pkg/errors"
)

const serviceName = "chain-rpc"

// RpcClient reads chain state from an EVM JSON-RPC endpoint.
type RpcClient struct {
	eth     *ethclient.Client
	timeout time.Duration
}

func Dial(rpcURL string, timeout time.Duration) (*RpcClient, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing %s", rpcURL)
	}
	return &RpcClient{eth: client, timeout: timeout}, nil
}

// BlockNumber returns the height of the most recent block.
func (c *RpcClient) BlockNumber(ctx context.Context) (height uint64, err error) {
	start := time.Now()
	defer func() { monitor.ObserveUpstream(serviceName, start, err) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	height, err = c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, &reject.UpstreamError{Service: serviceName, Cause: err}
	}
	return height, nil
}

func (c *RpcClient) Close() {
	c.eth.Close()
}
