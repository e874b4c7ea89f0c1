package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/opcode"
	"github.com/stretchr/testify/require"
)

func TestParseScriptHash(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	res, err := parseScriptHash(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseScriptHash(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseScriptHash("not a hash")
	require.Error(t, err)
}

func TestReadContract(t *testing.T) {
	dir := t.TempDir()
	nefPath := filepath.Join(dir, "contract.nef")
	manifestPath := filepath.Join(dir, "manifest.json")

	_, _, err := readContract(nefPath, manifestPath)
	require.Error(t, err)

	exe, err := nef.NewFile([]byte{byte(opcode.RET)})
	require.NoError(t, err)
	b, err := exe.Bytes()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(nefPath, b, 0600))

	_, _, err = readContract(nefPath, manifestPath)
	require.Error(t, err)

	m := manifest.NewManifest("Vibe Deposit")
	b, err = json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(manifestPath, b, 0600))

	resNEF, resManifest, err := readContract(nefPath, manifestPath)
	require.NoError(t, err)
	require.Equal(t, exe.Checksum, resNEF.Checksum)
	require.Equal(t, "Vibe Deposit", resManifest.Name)
}
