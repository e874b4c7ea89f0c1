// Command deploy deploys compiled ledger contract to Neo network.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/vibedeposit/vibedeposit-contract/deploy"
	"go.uber.org/zap"
)

// passwordEnv is an environment variable with the wallet account password.
const passwordEnv = "VIBEDEPOSIT_WALLET_PASSWORD"

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet with the deploying account")
	accAddress := flag.String("address", "", "Address of the deploying account (default account of the wallet if omitted)")
	nefPath := flag.String("nef", "contracts/deposit/contract.nef", "Path to the compiled ledger contract")
	manifestPath := flag.String("manifest", "contracts/deposit/manifest.json", "Path to the ledger contract manifest")
	tokenStr := flag.String("token", "", "Address or LE script hash of the deposited NEP-17 token")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing wallet")
	case *tokenStr == "":
		log.Fatal("missing token")
	}

	token, err := parseScriptHash(*tokenStr)
	if err != nil {
		log.Fatal(fmt.Errorf("invalid token: %w", err))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr, err := _deploy(ctx, logger, *neoRPCEndpoint, *walletPath, *accAddress, *nefPath, *manifestPath, token)
	if err != nil {
		logger.Fatal("ledger deployment failed", zap.Error(err))
	}

	fmt.Println(addr.StringLE())
}

func _deploy(ctx context.Context, logger *zap.Logger, endpoint, walletPath, accAddress, nefPath, manifestPath string, token util.Uint160) (util.Uint160, error) {
	acc, err := openAccount(walletPath, accAddress, os.Getenv(passwordEnv))
	if err != nil {
		return util.Uint160{}, err
	}

	exe, manif, err := readContract(nefPath, manifestPath)
	if err != nil {
		return util.Uint160{}, err
	}

	b, err := newRemoteBlockChain(ctx, endpoint, acc)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	return deploy.Deploy(ctx, deploy.Prm{
		Logger:     logger,
		Blockchain: b,
		Deployer:   b,
		Sender:     acc.ScriptHash(),
		NEF:        *exe,
		Manifest:   *manif,
		Token:      token,
	})
}

func openAccount(walletPath, accAddress, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	defer w.Close()

	var h util.Uint160
	if accAddress != "" {
		h, err = address.StringToUint160(accAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}
	} else {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", address.Uint160ToString(h))
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func readContract(nefPath, manifestPath string) (*nef.File, *manifest.Manifest, error) {
	b, err := os.ReadFile(nefPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read NEF file: %w", err)
	}

	exe, err := nef.FileFromBytes(b)
	if err != nil {
		return nil, nil, fmt.Errorf("decode NEF file: %w", err)
	}

	b, err = os.ReadFile(manifestPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read manifest file: %w", err)
	}

	var m manifest.Manifest

	err = json.Unmarshal(b, &m)
	if err != nil {
		return nil, nil, fmt.Errorf("decode manifest file: %w", err)
	}

	return &exe, &m, nil
}

// parseScriptHash accepts both Neo address and LE script hash.
func parseScriptHash(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	return util.Uint160DecodeStringLE(s)
}
