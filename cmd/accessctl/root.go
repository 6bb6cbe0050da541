// Package accessctl implements the accessctl command line interface. It
// reads access-control state through the configured network's indexer and
// RPC endpoints; signing and submission are out of scope.
package accessctl

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stellarkit/accessctl/sdk/indexer"
	"github.com/stellarkit/accessctl/types"
)

// cmdConfig carries the flag and environment configuration shared by every
// subcommand.
type cmdConfig struct {
	networkName string
	rpcURL      string
	indexerURL  string
	envFile     string
}

func (c *cmdConfig) networkConfig() (types.NetworkConfig, error) {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil {
			return types.NetworkConfig{}, fmt.Errorf("load env file %s: %w", c.envFile, err)
		}
	}

	cfg := types.NetworkConfig{
		Name:   firstNonEmpty(c.networkName, os.Getenv("ACCESSCTL_NETWORK"), "testnet"),
		RPCURL: firstNonEmpty(c.rpcURL, os.Getenv("ACCESSCTL_RPC_URL")),
	}
	if indexerURL := firstNonEmpty(c.indexerURL, os.Getenv("ACCESSCTL_INDEXER_URL")); indexerURL != "" {
		cfg.Indexer = &types.IndexerEndpoints{HTTP: indexerURL}
	}
	if err := cfg.Validate(); err != nil {
		return types.NetworkConfig{}, err
	}

	return cfg, nil
}

func (c *cmdConfig) indexerClient() (*indexer.Client, error) {
	cfg, err := c.networkConfig()
	if err != nil {
		return nil, err
	}

	return indexer.New(cfg), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// BuildRootCmd assembles the accessctl command tree.
func BuildRootCmd() *cobra.Command {
	cfg := &cmdConfig{}

	cmd := cobra.Command{
		Use:   "accessctl",
		Short: "Inspect contract access-control state",
	}

	cmd.PersistentFlags().StringVar(&cfg.networkName, "network", "", "Network name (or ACCESSCTL_NETWORK)")
	cmd.PersistentFlags().StringVar(&cfg.rpcURL, "rpc-url", "", "Soroban RPC endpoint (or ACCESSCTL_RPC_URL)")
	cmd.PersistentFlags().StringVar(&cfg.indexerURL, "indexer-url", "", "History indexer HTTP endpoint (or ACCESSCTL_INDEXER_URL)")
	cmd.PersistentFlags().StringVar(&cfg.envFile, "env-file", "", "Optional .env file to load before resolving config")

	cmd.AddCommand(buildLedgerCmd(cfg))
	cmd.AddCommand(buildHistoryCmd(cfg))
	cmd.AddCommand(buildRolesCmd(cfg))
	cmd.AddCommand(buildPendingCmd(cfg))
	cmd.AddCommand(buildCapabilitiesCmd())

	return &cmd
}

// printJSON writes v to stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))

	return nil
}
