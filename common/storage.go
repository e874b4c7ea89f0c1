package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// AccountKey returns storage key of the account-scoped record with the
// given one-byte prefix.
func AccountKey(prefix byte, account interop.Hash160) []byte {
	return append([]byte{prefix}, account...)
}

// GetInt returns integer stored by the key or zero if there is nothing.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// PutInt stores non-zero value by the key and removes the key otherwise,
// so zero values never occupy contract storage.
func PutInt(ctx storage.Context, key any, value int) {
	if value == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, value)
}
