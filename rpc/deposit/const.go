package deposit

import (
	"github.com/vibedeposit/vibedeposit-contract/contracts/deposit/depositconst"
)

const (
	// DepositData is a data attached by the ledger to token transfers made
	// on deposit. Payments with any other data are rejected.
	DepositData = depositconst.DepositData

	// ErrorTokenTransferFailed is an exception message thrown when token
	// contract refuses to move assets.
	ErrorTokenTransferFailed = depositconst.ErrTokenTransferFailed
	// ErrorAlreadyReceiver is an exception message thrown on repeated
	// receiver registration.
	ErrorAlreadyReceiver = depositconst.ErrAlreadyReceiver
	// ErrorNotAReceiver is an exception message thrown on withdrawal by
	// unregistered account.
	ErrorNotAReceiver = depositconst.ErrNotAReceiver
	// ErrorReceiverDoesNotExist is an exception message thrown on transfer
	// to unregistered account.
	ErrorReceiverDoesNotExist = depositconst.ErrReceiverDoesNotExist
	// ErrorTransferExceedsBalance is an exception message thrown when
	// depositor balance is not enough for the transfer.
	ErrorTransferExceedsBalance = depositconst.ErrTransferExceedsBalance
	// ErrorWithdrawalExceedsBalance is an exception message thrown when
	// receiver balance is not enough for the withdrawal.
	ErrorWithdrawalExceedsBalance = depositconst.ErrWithdrawalExceedsBalance
)
