package vibetoken_test

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/vibedeposit/vibedeposit-contract/common"
)

const tokenPath = "."

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, nil)

	return e.CommitteeInvoker(c.Hash)
}

func TestToken_Generic(t *testing.T) {
	c := newTokenInvoker(t)

	c.Invoke(t, "VIBE", "symbol")
	c.Invoke(t, 8, "decimals")
	c.Invoke(t, 0, "totalSupply")
}

func TestToken_Mint(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, common.ErrCommitteeWitnessFailed, "mint", acc.ScriptHash(), int64(1000))
	c.InvokeFail(t, common.ErrInvalidAmount, "mint", acc.ScriptHash(), int64(0))

	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000))
	c.Invoke(t, 1000, "balanceOf", acc.ScriptHash())
	c.Invoke(t, 1000, "totalSupply")
}

func TestToken_Transfer(t *testing.T) {
	c := newTokenInvoker(t)

	alice, bob := c.NewAccount(t), c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "mint", alice.ScriptHash(), int64(1000))

	cAlice := c.WithSigners(alice)
	cBob := c.WithSigners(bob)

	cBob.Invoke(t, false, "transfer", alice.ScriptHash(), bob.ScriptHash(), int64(100), nil)
	cAlice.Invoke(t, false, "transfer", alice.ScriptHash(), bob.ScriptHash(), int64(1001), nil)
	cAlice.InvokeFail(t, "negative amount", "transfer", alice.ScriptHash(), bob.ScriptHash(), int64(-1), nil)

	cAlice.Invoke(t, true, "transfer", alice.ScriptHash(), bob.ScriptHash(), int64(300), nil)
	c.Invoke(t, 700, "balanceOf", alice.ScriptHash())
	c.Invoke(t, 300, "balanceOf", bob.ScriptHash())
	c.Invoke(t, 1000, "totalSupply")
}

func TestToken_TransferFrom(t *testing.T) {
	c := newTokenInvoker(t)

	alice, bob := c.NewAccount(t), c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "mint", alice.ScriptHash(), int64(1000))

	cAlice := c.WithSigners(alice)

	// transaction script is the spender here, so without contract in the
	// middle the allowance is checked for the entry script
	cAlice.Invoke(t, false, "transferFrom", alice.ScriptHash(), bob.ScriptHash(), int64(1), nil)

	c.WithSigners(bob).InvokeFail(t, common.ErrWitnessFailed, "approve",
		alice.ScriptHash(), bob.ScriptHash(), int64(500))
	cAlice.Invoke(t, stackitem.Null{}, "approve", alice.ScriptHash(), bob.ScriptHash(), int64(500))
	c.Invoke(t, 500, "allowance", alice.ScriptHash(), bob.ScriptHash())

	cAlice.Invoke(t, stackitem.Null{}, "approve", alice.ScriptHash(), bob.ScriptHash(), int64(0))
	c.Invoke(t, 0, "allowance", alice.ScriptHash(), bob.ScriptHash())
}

func TestToken_Paused(t *testing.T) {
	c := newTokenInvoker(t)

	alice, bob := c.NewAccount(t), c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "mint", alice.ScriptHash(), int64(1000))

	cAlice := c.WithSigners(alice)

	cAlice.InvokeFail(t, common.ErrCommitteeWitnessFailed, "setPaused", true)

	c.Invoke(t, stackitem.Null{}, "setPaused", true)
	cAlice.Invoke(t, false, "transfer", alice.ScriptHash(), bob.ScriptHash(), int64(1), nil)

	c.Invoke(t, stackitem.Null{}, "setPaused", false)
	cAlice.Invoke(t, true, "transfer", alice.ScriptHash(), bob.ScriptHash(), int64(1), nil)
}
