// Admin commands, all owner-only: backend reassignment, the registrar
// allow-list, and the base URI prefix.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/pkg/types"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Owner-only ledger administration",
}

func init() {
	adminCmd.AddCommand(adminSetBackendCmd)
	adminCmd.AddCommand(adminSetRegistrarCmd)
	adminCmd.AddCommand(adminSetBaseURICmd)
}

var adminSetBackendCmd = &cobra.Command{
	Use:   "set-backend IDENTITY",
	Short: "Reassign the backend service identity",
	Long: `Set the identity authorized to record completions on users' behalf.
The backend starts as the owner until reassigned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := callerIdentity()
		if err != nil {
			return err
		}
		return withLedger(true, func(l *ledger.Ledger) error {
			return l.SetBackend(caller, types.Identity(args[0]))
		})
	},
}

var adminSetRegistrarCmd = &cobra.Command{
	Use:   "set-registrar IDENTITY ALLOWED",
	Short: "Toggle an identity on the registrar allow-list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := callerIdentity()
		if err != nil {
			return err
		}
		allowed, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid allowed value %q: expected true or false", args[1])
		}
		return withLedger(true, func(l *ledger.Ledger) error {
			return l.SetRegistrar(caller, types.Identity(args[0]), allowed)
		})
	},
}

var adminSetBaseURICmd = &cobra.Command{
	Use:   "set-base-uri BASE_URI",
	Short: "Set the display-URI prefix for tokens without an explicit URI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := callerIdentity()
		if err != nil {
			return err
		}
		return withLedger(true, func(l *ledger.Ledger) error {
			return l.SetBaseURI(caller, args[0])
		})
	},
}
