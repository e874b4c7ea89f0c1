// Package deploy provides means to deploy the ledger contract to Neo blockchain.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/vibedeposit/vibedeposit-contract/rpc/deposit"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required to deploy the ledger and check its state.
type Blockchain interface {
	// Invoker is used to call safe methods of already deployed ledger.
	deposit.Invoker

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Deployer sends contract deployment transactions and waits for them to be
// accepted. Management contract client accompanied by the actor it is based
// on satisfies the interface.
type Deployer interface {
	// Deploy sends transaction deploying the given contract and returns its
	// hash and ValidUntilBlock value.
	Deploy(exe *nef.File, manif *manifest.Manifest, data any) (util.Uint256, uint32, error)

	// Wait blocks until transaction is accepted or expired and returns its
	// execution result.
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Prm groups parameters of the ledger deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Neo blockchain the ledger is deployed to.
	Blockchain Blockchain

	// Sends deployment transaction signed by Sender.
	Deployer Deployer

	// Account sending deployment transaction. Together with NEF checksum and
	// manifest name it defines the ledger address.
	Sender util.Uint160

	NEF      nef.File
	Manifest manifest.Manifest

	// NEP-17 token accepted by the ledger.
	Token util.Uint160
}

// ErrTokenMismatch is returned by Deploy when the ledger is already deployed
// with a token different from the requested one.
var ErrTokenMismatch = errors.New("ledger is deployed with another token")

// Deploy makes the ledger available on the blockchain and returns its address.
//
// The address is calculated in advance, so Deploy does nothing if the ledger
// is already deployed there and accepts Prm.Token. Otherwise it sends the
// deployment transaction and waits for it to be successfully executed.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	addr := state.CreateContractHash(prm.Sender, prm.NEF.Checksum, prm.Manifest.Name)
	l := prm.Logger.With(zap.Stringer("address", addr), zap.Stringer("token", prm.Token))

	l.Info("checking the ledger on the chain...")

	deployed, err := isDeployed(prm.Blockchain, addr)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check ledger state: %w", err)
	}

	if deployed {
		token, err := deposit.NewReader(prm.Blockchain, addr).TokenToDeposit()
		if err != nil {
			return util.Uint160{}, fmt.Errorf("read deposit token of the ledger: %w", err)
		}

		if !token.Equals(prm.Token) {
			return util.Uint160{}, fmt.Errorf("%w: %s", ErrTokenMismatch, token.StringLE())
		}

		l.Info("ledger is already deployed")

		return addr, nil
	}

	if err = ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	l.Info("ledger is missing on the chain, deploying...")

	res, err := waitDeploy(ctx, prm.Deployer, &prm.NEF, &prm.Manifest, []any{prm.Token})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("deploy ledger: %w", err)
	}

	if res.VMState != vmstate.Halt {
		err = deposit.FaultError(res.FaultException)
		if err == nil {
			err = fmt.Errorf("unexpected VM state %s", res.VMState)
		}

		return util.Uint160{}, fmt.Errorf("deployment transaction %s failed: %w", res.Container.StringLE(), err)
	}

	l.Info("ledger successfully deployed", zap.Stringer("tx", res.Container))

	return addr, nil
}

func isDeployed(b Blockchain, addr util.Uint160) (bool, error) {
	st, err := b.GetContractStateByHash(addr)
	if err != nil {
		if isErrContractNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return st != nil, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

// waitDeploy sends deployment transaction and waits for its result until the
// context is done.
func waitDeploy(ctx context.Context, d Deployer, exe *nef.File, manif *manifest.Manifest, data any) (*state.AppExecResult, error) {
	type waitRes struct {
		res *state.AppExecResult
		err error
	}

	ch := make(chan waitRes, 1)

	go func() {
		res, err := d.Wait(d.Deploy(exe, manif, data))
		ch <- waitRes{res, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.res, r.err
	}
}
