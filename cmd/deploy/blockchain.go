package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// wrapper over Neo RPC client providing blockchain services needed for the
// ledger deployment.
type remoteBlockchain struct {
	rpc *rpcclient.Client
	*actor.Actor

	mgmt *management.Contract
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain
// sending transactions signed by the given account. Connection and all
// requests are done within 15s timeout.
func newRemoteBlockChain(ctx context.Context, endpoint string, acc *wallet.Account) (*remoteBlockchain, error) {
	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &remoteBlockchain{
		rpc:   c,
		Actor: act,
		mgmt:  management.New(act),
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// GetContractStateByHash implements deploy.Blockchain.
func (x *remoteBlockchain) GetContractStateByHash(h util.Uint160) (*state.Contract, error) {
	return x.rpc.GetContractStateByHash(h)
}

// Deploy implements deploy.Deployer.
func (x *remoteBlockchain) Deploy(exe *nef.File, manif *manifest.Manifest, data any) (util.Uint256, uint32, error) {
	return x.mgmt.Deploy(exe, manif, data)
}
