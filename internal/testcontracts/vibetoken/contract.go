package vibetoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vibedeposit/vibedeposit-contract/common"
)

const (
	symbol   = "VIBE"
	decimals = 8

	supplyKey = "supply"
	pausedKey = "paused"

	balancePrefix   = 'b'
	allowancePrefix = 'a'
)

// Symbol is a NEP-17 standard method.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, supplyKey)
}

// BalanceOf is a NEP-17 standard method.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, common.AccountKey(balancePrefix, account))
}

// Allowance returns amount the spender can transfer from the owner account
// with TransferFrom.
func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

// Approve sets amount the spender can transfer from the owner account. It
// overrides previous allowance.
func Approve(owner, spender interop.Hash160, amount int) {
	common.CheckAccount(owner)
	common.CheckAccount(spender)
	if amount < 0 {
		panic("negative amount")
	}
	common.CheckWitness(owner)

	ctx := storage.GetContext()
	common.PutInt(ctx, allowanceKey(owner, spender), amount)

	runtime.Notify("Approval", owner, spender, amount)
}

// Transfer is a NEP-17 standard method. It can be invoked by the account
// owner or by the contract which address is from.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	common.CheckAccount(from)
	common.CheckAccount(to)
	if amount < 0 {
		panic("negative amount")
	}

	if !isUsableAddress(from) {
		runtime.Log("bad script hashes")
		return false
	}

	ctx := storage.GetContext()
	if !canTransfer(ctx, from, amount) {
		return false
	}

	transfer(ctx, from, to, amount, data)
	return true
}

// TransferFrom transfers assets from one account to another spending
// allowance given by the from account to the calling contract.
func TransferFrom(from, to interop.Hash160, amount int, data any) bool {
	common.CheckAccount(from)
	common.CheckAccount(to)
	if amount < 0 {
		panic("negative amount")
	}

	ctx := storage.GetContext()
	spender := runtime.GetCallingScriptHash()

	key := allowanceKey(from, spender)
	allowance := common.GetInt(ctx, key)
	if allowance < amount {
		runtime.Log("insufficient allowance")
		return false
	}

	if !canTransfer(ctx, from, amount) {
		return false
	}

	common.PutInt(ctx, key, allowance-amount)
	transfer(ctx, from, to, amount, data)

	return true
}

// Mint issues new tokens to the account. It can be invoked only by committee.
func Mint(to interop.Hash160, amount int) {
	common.CheckAccount(to)
	common.CheckAmount(amount)
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()

	common.PutInt(ctx, supplyKey, common.GetInt(ctx, supplyKey)+amount)
	transfer(ctx, nil, to, amount, nil)
}

// SetPaused enables or disables all transfers. Paused token returns false
// from every transfer. It can be invoked only by committee.
func SetPaused(paused bool) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	if paused {
		storage.Put(ctx, pausedKey, true)
	} else {
		storage.Delete(ctx, pausedKey)
	}
}

func canTransfer(ctx storage.Context, from interop.Hash160, amount int) bool {
	if storage.Get(ctx, pausedKey) != nil {
		runtime.Log("token is paused")
		return false
	}

	if common.GetInt(ctx, common.AccountKey(balancePrefix, from)) < amount {
		runtime.Log("not enough assets")
		return false
	}

	return true
}

// transfer moves assets without any checks, nil from means minting.
func transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) {
	if !from.Equals(to) && amount != 0 {
		if len(from) == interop.Hash160Len {
			fromKey := common.AccountKey(balancePrefix, from)
			common.PutInt(ctx, fromKey, common.GetInt(ctx, fromKey)-amount)
		}

		toKey := common.AccountKey(balancePrefix, to)
		common.PutInt(ctx, toKey, common.GetInt(ctx, toKey)+amount)
	}

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if runtime.CheckWitness(addr) {
		return true
	}

	// Check if a smart contract is calling script hash
	callingScriptHash := runtime.GetCallingScriptHash()
	return callingScriptHash.Equals(addr)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return append(common.AccountKey(allowancePrefix, owner), spender...)
}
