// Completion commands: the backend-only mint path and completion queries.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/pkg/types"
)

var completeCmd = &cobra.Command{
	Use:   "complete TO KIND URI NAME",
	Short: "Record a completion and mint its token (backend only)",
	Long: `Record that the TO identity completed the media item described by
(KIND, URI, NAME), registering the item in the catalog if needed, and mint
the completion token. Only the configured backend identity may call this.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := callerIdentity()
		if err != nil {
			return err
		}
		kind, err := parseKindArg(args[1])
		if err != nil {
			return err
		}
		return withLedger(true, func(l *ledger.Ledger) error {
			token, err := l.CompleteAndRegister(caller, types.Identity(args[0]), kind, args[2], args[3])
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, map[string]uint64{"token_id": uint64(token)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), uint64(token))
			return nil
		})
	},
}

var completedCmd = &cobra.Command{
	Use:   "completed USER MEDIA_ID",
	Short: "Check whether a user completed a media item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(l *ledger.Ledger) error {
			has := l.HasCompleted(types.Identity(args[0]), types.MediaID(args[1]))
			return printBool(cmd, "completed", has)
		})
	},
}

var canTextCmd = &cobra.Command{
	Use:   "can-text FROM TO MEDIA_ID",
	Short: "Check whether two users both completed a media item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(l *ledger.Ledger) error {
			ok := l.CanText(types.Identity(args[0]), types.Identity(args[1]), types.MediaID(args[2]))
			return printBool(cmd, "can_text", ok)
		})
	},
}
