// The similar command: other users who completed the same media.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/pkg/types"
)

var similarCmd = &cobra.Command{
	Use:   "similar TOKEN_ID [TOKEN_ID...]",
	Short: "Find users who completed the same media",
	Long: `With one token, list the other completers of that token's media item.
With several tokens (all owned by the same user), list the union of
completers across all their media items. The tokens' owner is excluded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := make([]types.TokenID, len(args))
		for i, arg := range args {
			token, err := parseTokenArg(arg)
			if err != nil {
				return err
			}
			tokens[i] = token
		}
		return withLedger(false, func(l *ledger.Ledger) error {
			var users []types.Identity
			var err error
			if len(tokens) == 1 {
				users, err = l.SimilarsForToken(tokens[0])
			} else {
				users, err = l.SimilarsFromTokens(tokens)
			}
			if err != nil {
				return err
			}
			if flagJSON {
				out := make([]string, len(users))
				for i, u := range users {
					out[i] = string(u)
				}
				return printJSON(cmd, map[string][]string{"users": out})
			}
			for _, u := range users {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		})
	},
}
