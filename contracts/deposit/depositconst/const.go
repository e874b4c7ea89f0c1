// Package depositconst contains constants shared by the deposit ledger
// contract and its off-chain clients.
package depositconst

const (
	// ErrTokenTransferFailed is thrown when the token contract refuses to move
	// assets, e.g. because of insufficient allowance or balance.
	ErrTokenTransferFailed = "token transfer failed"
	// ErrAlreadyReceiver is thrown when an account registers as a receiver
	// for the second time.
	ErrAlreadyReceiver = "already a receiver"
	// ErrNotAReceiver is thrown when an account that is not a receiver tries
	// to withdraw.
	ErrNotAReceiver = "not a receiver"
	// ErrReceiverDoesNotExist is thrown when assets are transferred to an
	// account that is not a receiver.
	ErrReceiverDoesNotExist = "receiver does not exist"
	// ErrTransferExceedsBalance is thrown when a depositor transfers more
	// than it has deposited.
	ErrTransferExceedsBalance = "transfer amount exceeds depositor balance"
	// ErrWithdrawalExceedsBalance is thrown when a receiver withdraws more
	// than it has received.
	ErrWithdrawalExceedsBalance = "withdrawal amount exceeds receiver balance"

	// ErrUnexpectedToken is logged when the contract is paid with a token
	// other than the deposited one.
	ErrUnexpectedToken = "only deposit token can be accepted"
	// ErrDirectPayment is logged when tokens are sent to the contract
	// bypassing Deposit method.
	ErrDirectPayment = "tokens can be accepted via deposit only"
)

const (
	// DepositData is passed as transfer data by Deposit method, payments
	// without it are rejected.
	DepositData = "deposit"
)
