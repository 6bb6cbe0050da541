package accessctl

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stellarkit/accessctl"
	"github.com/stellarkit/accessctl/sdk/rpc"
	"github.com/stellarkit/accessctl/types"
)

func buildLedgerCmd(cfg *cmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "Print the chain's latest ledger sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := cfg.networkConfig()
			if err != nil {
				return err
			}

			sequence, err := rpc.NewLedgerClient(network.RPCURL, nil).LatestLedger(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]uint32{"sequence": sequence})
		},
	}
}

func buildHistoryCmd(cfg *cmdConfig) *cobra.Command {
	var (
		contract string
		roleID   string
		account  string
		limit    int
		cursor   string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Query a contract's access-control history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := accessctl.ValidateContractAddress("contract", contract); err != nil {
				return err
			}
			client, err := cfg.indexerClient()
			if err != nil {
				return err
			}

			page, err := client.QueryHistory(cmd.Context(), contract, types.HistoryFilter{
				RoleID:  roleID,
				Account: account,
				Limit:   limit,
				Cursor:  cursor,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd, page)
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Contract address")
	cmd.Flags().StringVar(&roleID, "role", "", "Filter by role id")
	cmd.Flags().StringVar(&account, "account", "", "Filter by account address")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&cursor, "cursor", "", "Pagination cursor from a previous page")

	return cmd
}

func buildRolesCmd(cfg *cmdConfig) *cobra.Command {
	var contract string

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Discover the role identifiers seen in a contract's history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := accessctl.ValidateContractAddress("contract", contract); err != nil {
				return err
			}
			client, err := cfg.indexerClient()
			if err != nil {
				return err
			}

			roleIDs, err := client.DiscoverRoleIDs(cmd.Context(), contract)
			if err != nil {
				return err
			}

			return printJSON(cmd, roleIDs)
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Contract address")

	return cmd
}

func buildPendingCmd(cfg *cmdConfig) *cobra.Command {
	var (
		contract string
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Look up an in-flight ownership or admin transfer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := accessctl.ValidateContractAddress("contract", contract); err != nil {
				return err
			}
			client, err := cfg.indexerClient()
			if err != nil {
				return err
			}

			lookup := client.PendingOwnershipTransfer
			if admin {
				lookup = client.PendingAdminTransfer
			}
			pending, err := lookup(cmd.Context(), contract)
			if err != nil {
				return err
			}
			if pending == nil {
				cmd.Println("no pending transfer")
				return nil
			}

			return printJSON(cmd, pending)
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Contract address")
	cmd.Flags().BoolVar(&admin, "admin", false, "Look up the admin transfer instead of ownership")

	return cmd
}

func buildCapabilitiesCmd() *cobra.Command {
	var functions string

	cmd := &cobra.Command{
		Use:   "capabilities",
		Short: "Classify a function inventory into capability flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			inventory := []string{}
			for _, fn := range strings.Split(functions, ",") {
				if fn = strings.TrimSpace(fn); fn != "" {
					inventory = append(inventory, fn)
				}
			}

			return printJSON(cmd, accessctl.DetectCapabilities(inventory, false))
		},
	}

	cmd.Flags().StringVar(&functions, "functions", "", "Comma-separated contract function names")

	return cmd
}
