package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

const (
	// ErrWitnessFailed appears when the method must be called
	// by the owner of the account but was not.
	ErrWitnessFailed = "witness check failed"
	// ErrCommitteeWitnessFailed appears when the method must be called
	// by the network committee but was not.
	ErrCommitteeWitnessFailed = "committee witness check failed"
)

// CheckWitness checks witness of the passed account.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(account []byte) {
	checkWitnessWithPanic(account, ErrWitnessFailed)
}

// CheckCommitteeWitness checks that the transaction is signed by the
// committee multisignature. It panics with ErrCommitteeWitnessFailed message
// on fail.
func CheckCommitteeWitness() {
	checkWitnessWithPanic(CommitteeAddress(), ErrCommitteeWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
