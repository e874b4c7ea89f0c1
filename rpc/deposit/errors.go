package deposit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vibedeposit/vibedeposit-contract/common"
)

// Errors returned by FaultError for known ledger exceptions.
var (
	ErrTokenTransferFailed      = errors.New(ErrorTokenTransferFailed)
	ErrAlreadyReceiver          = errors.New(ErrorAlreadyReceiver)
	ErrNotAReceiver             = errors.New(ErrorNotAReceiver)
	ErrReceiverDoesNotExist     = errors.New(ErrorReceiverDoesNotExist)
	ErrTransferExceedsBalance   = errors.New(ErrorTransferExceedsBalance)
	ErrWithdrawalExceedsBalance = errors.New(ErrorWithdrawalExceedsBalance)
	ErrInvalidAmount            = errors.New(common.ErrInvalidAmount)
	ErrInvalidAccount           = errors.New(common.ErrInvalidAccount)
	ErrWitnessFailed            = errors.New(common.ErrWitnessFailed)
)

var knownErrors = []error{
	ErrTokenTransferFailed,
	ErrAlreadyReceiver,
	ErrNotAReceiver,
	ErrReceiverDoesNotExist,
	ErrTransferExceedsBalance,
	ErrWithdrawalExceedsBalance,
	ErrInvalidAmount,
	ErrInvalidAccount,
	ErrWitnessFailed,
}

// FaultError converts VM exception of the failed ledger invocation into
// error. Exceptions thrown with one of the known messages are wrapped into
// the corresponding package error so they can be checked with errors.Is.
// Empty exception results in nil.
func FaultError(exception string) error {
	if exception == "" {
		return nil
	}

	for _, e := range knownErrors {
		if exception == e.Error() || strings.HasSuffix(exception, `exception: "`+e.Error()+`"`) {
			return fmt.Errorf("%w: %s", e, exception)
		}
	}

	return fmt.Errorf("ledger invocation fault: %s", exception)
}
