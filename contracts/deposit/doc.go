/*
Package deposit implements Deposit ledger contract which keeps custody of a
single NEP-17 token.

Any account can deposit tokens into the ledger after approving them to the
ledger in the token contract. Deposited tokens become depositor balance that
can't be withdrawn directly, it can only be transferred to a receiver. Any
account can register itself as a receiver once. Receivers accumulate assets
transferred by depositors and withdraw them back as real tokens.

The token contract is set on deployment and must support `transferFrom`
method spending allowances of the calling contract in addition to NEP-17
`transfer`.

# Contract notifications

Deposit notification. This notification is produced when tokens are moved
from the depositor account to the ledger.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

ReceiverRegistered notification. This notification is produced when an account
becomes a receiver.

	ReceiverRegistered:
	  - name: account
	    type: Hash160

TransferToReceiver notification. This notification is produced when depositor
balance is moved to the receiver. No tokens are transferred.

	TransferToReceiver:
	  - name: from
	    type: Hash160
	  - name: receiver
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification. This notification is produced when tokens are moved
from the ledger to the receiver account.

	Withdraw:
	  - name: receiver
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package deposit

/*
Contract storage model.

# Summary
Key-value storage format:
 - 't' -> interop.Hash160
   script hash of the deposited token contract
 - d<interop.Hash160> -> int
   depositor balance, missing key means zero balance
 - r<interop.Hash160> -> std.Serialize(ReceiverInfo)
   receiver record, missing key means the account is not a receiver
 - 'p' -> interop.Hash160
   depositor of the Deposit call in progress, exists only while token
   transferFrom is executed

# Custody
Sum of all depositor and receiver balances is equal to the amount of tokens
held by the contract account. Payments made outside of Deposit method are
rejected in OnNEP17Payment even if they carry deposit data.
*/
