// Token commands: holdings, ownership, URI resolution, and burn.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/pkg/types"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [USER]",
	Short: "List the completion tokens a user holds",
	Long:  "List the token ids held by USER, or by the caller when USER is omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var user types.Identity
		if len(args) == 1 {
			user = types.Identity(args[0])
		} else {
			caller, err := callerIdentity()
			if err != nil {
				return err
			}
			user = caller
		}
		return withLedger(false, func(l *ledger.Ledger) error {
			tokens := l.UserTokenIDs(user)
			if flagJSON {
				ids := make([]uint64, len(tokens))
				for i, t := range tokens {
					ids[i] = uint64(t)
				}
				return printJSON(cmd, map[string][]uint64{"token_ids": ids})
			}
			for _, t := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), uint64(t))
			}
			return nil
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Inspect a single completion token",
}

func init() {
	tokenCmd.AddCommand(tokenOwnerCmd)
	tokenCmd.AddCommand(tokenURICmd)
}

var tokenOwnerCmd = &cobra.Command{
	Use:   "owner TOKEN_ID",
	Short: "Show the identity that holds a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := parseTokenArg(args[0])
		if err != nil {
			return err
		}
		return withLedger(false, func(l *ledger.Ledger) error {
			owner, err := l.OwnerOf(token)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, map[string]string{"owner": string(owner)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), owner)
			return nil
		})
	},
}

var tokenURICmd = &cobra.Command{
	Use:   "uri TOKEN_ID",
	Short: "Resolve the display URI for a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := parseTokenArg(args[0])
		if err != nil {
			return err
		}
		return withLedger(false, func(l *ledger.Ledger) error {
			uri, err := l.TokenURI(token)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, map[string]string{"uri": uri})
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		})
	},
}

var burnCmd = &cobra.Command{
	Use:   "burn TOKEN_ID",
	Short: "Burn a completion token the caller owns",
	Long: `Destroy a completion token. Burning removes the token, its completion
record, the caller's completer entry for the media, and the caller's group
membership for that media. Token ids are never reused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := callerIdentity()
		if err != nil {
			return err
		}
		token, err := parseTokenArg(args[0])
		if err != nil {
			return err
		}
		return withLedger(true, func(l *ledger.Ledger) error {
			return l.Burn(caller, token)
		})
	},
}
