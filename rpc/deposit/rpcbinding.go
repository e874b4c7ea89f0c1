// Package deposit contains RPC wrappers for Vibe Deposit ledger contract.
package deposit

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// DepositReceiverInfo is a contract-specific deposit.ReceiverInfo type used by its methods.
type DepositReceiverInfo struct {
	Balance *big.Int
	IsReceiver bool
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From util.Uint160
	Amount *big.Int
}

// ReceiverRegisteredEvent represents "ReceiverRegistered" event emitted by the contract.
type ReceiverRegisteredEvent struct {
	Account util.Uint160
}

// TransferToReceiverEvent represents "TransferToReceiver" event emitted by the contract.
type TransferToReceiverEvent struct {
	From util.Uint160
	Receiver util.Uint160
	Amount *big.Int
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	Receiver util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetDepositorBalance invokes `getDepositorBalance` method of contract.
func (c *ContractReader) GetDepositorBalance(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getDepositorBalance", account))
}

// GetReceiverInfo invokes `getReceiverInfo` method of contract.
func (c *ContractReader) GetReceiverInfo(account util.Uint160) (*DepositReceiverInfo, error) {
	return itemToDepositReceiverInfo(unwrap.Item(c.invoker.Call(c.hash, "getReceiverInfo", account)))
}

// IterateReceivers invokes `iterateReceivers` method of contract.
func (c *ContractReader) IterateReceivers() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateReceivers"))
}

// IterateReceiversExpanded is similar to IterateReceivers (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateReceiversExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateReceivers", _numOfIteratorItems))
}

// TokenToDeposit invokes `tokenToDeposit` method of contract.
func (c *ContractReader) TokenToDeposit() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "tokenToDeposit"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// BecomeReceiver creates a transaction invoking `becomeReceiver` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BecomeReceiver(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "becomeReceiver", account)
}

// BecomeReceiverTransaction creates a transaction invoking `becomeReceiver` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BecomeReceiverTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "becomeReceiver", account)
}

// BecomeReceiverUnsigned creates a transaction invoking `becomeReceiver` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BecomeReceiverUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "becomeReceiver", nil, account)
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", from, amount)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", from, amount)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, from, amount)
}

// TransferToReceiver creates a transaction invoking `transferToReceiver` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferToReceiver(from util.Uint160, receiver util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferToReceiver", from, receiver, amount)
}

// TransferToReceiverTransaction creates a transaction invoking `transferToReceiver` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferToReceiverTransaction(from util.Uint160, receiver util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferToReceiver", from, receiver, amount)
}

// TransferToReceiverUnsigned creates a transaction invoking `transferToReceiver` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferToReceiverUnsigned(from util.Uint160, receiver util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferToReceiver", nil, from, receiver, amount)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(account util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", account, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", account, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, account, amount)
}

// itemToDepositReceiverInfo converts stack item into *DepositReceiverInfo.
func itemToDepositReceiverInfo(item stackitem.Item, err error) (*DepositReceiverInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DepositReceiverInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DepositReceiverInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DepositReceiverInfo) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Balance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	index++
	res.IsReceiver, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field IsReceiver: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ReceiverRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "ReceiverRegistered" name from the provided [result.ApplicationLog].
func ReceiverRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReceiverRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReceiverRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReceiverRegistered" {
				continue
			}
			event := new(ReceiverRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReceiverRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReceiverRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *ReceiverRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// TransferToReceiverEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferToReceiver" name from the provided [result.ApplicationLog].
func TransferToReceiverEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferToReceiverEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferToReceiverEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferToReceiver" {
				continue
			}
			event := new(TransferToReceiverEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferToReceiverEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferToReceiverEvent or
// returns an error if it's not possible to do to so.
func (e *TransferToReceiverEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// WithdrawEventsFromApplicationLog retrieves a set of all emitted events
// with "Withdraw" name from the provided [result.ApplicationLog].
func WithdrawEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Withdraw" {
				continue
			}
			event := new(WithdrawEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
