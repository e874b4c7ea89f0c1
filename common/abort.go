package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

const (
	// ErrInvalidAmount is thrown when token amount is zero or negative.
	ErrInvalidAmount = "amount must be positive"
	// ErrInvalidAccount is thrown when account script hash has wrong length.
	ErrInvalidAccount = "invalid account"
)

// CheckAmount panics with ErrInvalidAmount if amount is not positive.
func CheckAmount(amount int) {
	if amount <= 0 {
		panic(ErrInvalidAmount)
	}
}

// CheckAccount panics with ErrInvalidAccount if the passed script hash is
// not 20 bytes long.
func CheckAccount(account interop.Hash160) {
	if len(account) != interop.Hash160Len {
		panic(ErrInvalidAccount)
	}
}

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}
