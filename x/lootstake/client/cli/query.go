package cli

import (
	"encoding/json"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"lootchain/x/lootstake/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the lootstake module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(getParamsCmd())
	cmd.AddCommand(getPoolCmd())
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
			if err != nil || len(bz) == 0 {
				// If unset or unavailable, fall back to defaults.
				out, _ := json.Marshal(types.DefaultParams())
				return clientCtx.PrintString(string(out) + "\n")
			}

			// Stored as JSON (collections codec).
			var p types.Params
			if err := json.Unmarshal(bz, &p); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(p)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Shows the reward pool, per-epoch allotment and start time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			params := types.DefaultParams()
			if bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey); err == nil && len(bz) > 0 {
				_ = json.Unmarshal(bz, &params)
			}

			var pool uint64
			if bz, _, err := clientCtx.QueryStore(types.RewardPoolKey.Bytes(), types.StoreKey); err == nil && len(bz) > 0 {
				pool = sdk.BigEndianToUint64(bz)
			}

			resp := struct {
				RewardDenom         string `json:"reward_denom"`
				TotalRewards        uint64 `json:"total_rewards"`
				TotalRewardPerEpoch uint64 `json:"total_reward_per_epoch"`
			}{
				RewardDenom:         params.RewardDenom,
				TotalRewards:        pool,
				TotalRewardPerEpoch: pool / params.NumEpochs,
			}
			out, _ := json.Marshal(resp)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
