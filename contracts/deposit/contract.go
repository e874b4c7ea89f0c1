package deposit

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vibedeposit/vibedeposit-contract/common"
	"github.com/vibedeposit/vibedeposit-contract/contracts/deposit/depositconst"
)

// ReceiverInfo describes account registered as a receiver of deposited
// assets.
type ReceiverInfo struct {
	// Assets received from depositors and not withdrawn yet.
	Balance int
	// Set once by BecomeReceiver and never reset.
	IsReceiver bool
}

const (
	tokenKey = 't'
	// set to the depositor for the time of transferFrom call in Deposit
	pendingKey = 'p'

	depositorPrefix = 'd'
	receiverPrefix  = 'r'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		token interop.Hash160
	})

	if len(args.token) != interop.Hash160Len {
		panic("incorrect length of token script hash")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, tokenKey, args.token)

	runtime.Log("deposit ledger initialized")
}

// TokenToDeposit returns script hash of the token contract which assets are
// kept by the ledger. It is set on deployment and never changes.
func TokenToDeposit() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getToken(ctx)
}

// OnNEP17Payment is a callback for NEP-17 compatible token contracts. Only
// the deposited token is accepted and only as a part of Deposit call made
// for the paying account, any other payment is aborted.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()

	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(getToken(ctx)) {
		common.AbortWithMessage(depositconst.ErrUnexpectedToken)
	}

	if data == nil || data.(string) != depositconst.DepositData {
		common.AbortWithMessage(depositconst.ErrDirectPayment)
	}

	pending := storage.Get(ctx, pendingKey)
	if pending == nil || !from.Equals(pending) {
		common.AbortWithMessage(depositconst.ErrDirectPayment)
	}
}

// Deposit moves amount of tokens from the account to the ledger and credits
// depositor balance of the account. The account must witness the
// transaction and approve at least amount of tokens to the ledger in the
// token contract.
//
// It produces Deposit notification.
func Deposit(from interop.Hash160, amount int) {
	common.CheckAccount(from)
	common.CheckAmount(amount)
	common.CheckWitness(from)

	ctx := storage.GetContext()
	token := getToken(ctx)

	key := common.AccountKey(depositorPrefix, from)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)

	storage.Put(ctx, pendingKey, from)

	self := runtime.GetExecutingScriptHash()
	ok := contract.Call(token, "transferFrom", contract.All,
		from, self, amount, depositconst.DepositData).(bool)
	if !ok {
		panic(depositconst.ErrTokenTransferFailed)
	}

	storage.Delete(ctx, pendingKey)

	runtime.Notify("Deposit", from, amount)
}

// BecomeReceiver registers the account as a receiver. Registration is
// permanent and can be done only once.
//
// It produces ReceiverRegistered notification.
func BecomeReceiver(account interop.Hash160) {
	common.CheckAccount(account)
	common.CheckWitness(account)

	ctx := storage.GetContext()

	rcv := getReceiver(ctx, account)
	if rcv.IsReceiver {
		panic(depositconst.ErrAlreadyReceiver)
	}

	common.SetSerialized(ctx, common.AccountKey(receiverPrefix, account), ReceiverInfo{
		Balance:    0,
		IsReceiver: true,
	})

	runtime.Notify("ReceiverRegistered", account)
}

// TransferToReceiver moves amount from depositor balance of the account to
// the balance of the registered receiver. No tokens leave the ledger.
//
// It produces TransferToReceiver notification.
func TransferToReceiver(from, receiver interop.Hash160, amount int) {
	common.CheckAccount(from)
	common.CheckAccount(receiver)
	common.CheckAmount(amount)
	common.CheckWitness(from)

	ctx := storage.GetContext()

	rcv := getReceiver(ctx, receiver)
	if !rcv.IsReceiver {
		panic(depositconst.ErrReceiverDoesNotExist)
	}

	fromKey := common.AccountKey(depositorPrefix, from)
	balance := common.GetInt(ctx, fromKey)
	if balance < amount {
		panic(depositconst.ErrTransferExceedsBalance)
	}

	common.PutInt(ctx, fromKey, balance-amount)

	rcv.Balance += amount
	common.SetSerialized(ctx, common.AccountKey(receiverPrefix, receiver), rcv)

	runtime.Notify("TransferToReceiver", from, receiver, amount)
}

// Withdraw decreases receiver balance of the account by amount and
// transfers the same amount of tokens from the ledger to the account.
//
// It produces Withdraw notification.
func Withdraw(account interop.Hash160, amount int) {
	common.CheckAccount(account)
	common.CheckAmount(amount)
	common.CheckWitness(account)

	ctx := storage.GetContext()

	rcv := getReceiver(ctx, account)
	if !rcv.IsReceiver {
		panic(depositconst.ErrNotAReceiver)
	}

	if rcv.Balance < amount {
		panic(depositconst.ErrWithdrawalExceedsBalance)
	}

	rcv.Balance -= amount
	common.SetSerialized(ctx, common.AccountKey(receiverPrefix, account), rcv)

	self := runtime.GetExecutingScriptHash()
	ok := contract.Call(getToken(ctx), "transfer", contract.All,
		self, account, amount, nil).(bool)
	if !ok {
		panic(depositconst.ErrTokenTransferFailed)
	}

	runtime.Notify("Withdraw", account, amount)
}

// GetDepositorBalance returns amount deposited by the account and not
// transferred to receivers yet. Returns 0 for unknown accounts.
func GetDepositorBalance(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, common.AccountKey(depositorPrefix, account))
}

// GetReceiverInfo returns receiver record of the account. Accounts that have
// never called BecomeReceiver have zero balance and IsReceiver set to false.
func GetReceiverInfo(account interop.Hash160) ReceiverInfo {
	ctx := storage.GetReadOnlyContext()
	return getReceiver(ctx, account)
}

// IterateReceivers returns iterator over script hashes of all registered
// receivers.
func IterateReceivers() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{receiverPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getToken(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, tokenKey).(interop.Hash160)
}

func getReceiver(ctx storage.Context, account interop.Hash160) ReceiverInfo {
	data := storage.Get(ctx, common.AccountKey(receiverPrefix, account))
	if data != nil {
		return std.Deserialize(data.([]byte)).(ReceiverInfo)
	}

	return ReceiverInfo{}
}
