package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
)

// CommitteeAddress returns `M = N/2+1` multisignature address of the current
// network committee.
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	return contract.CreateMultisigAccount(len(committee)/2+1, committee)
}
