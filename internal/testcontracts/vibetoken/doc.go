/*
Package vibetoken implements NEP-17 token with allowances which is used as
a deposited token in tests.

In addition to NEP-17 methods the token supports `approve`, `allowance` and
`transferFrom`. TransferFrom spends allowance given to the calling contract,
so deposit ledger can pull approved tokens from depositors. Committee can
mint tokens and pause all transfers.
*/
package vibetoken
