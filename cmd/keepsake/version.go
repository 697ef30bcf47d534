package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/keepsake/pkg/keepsake"
)

const modulePath = "github.com/oakmere/keepsake"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the keepsake version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "keepsake v%s\nmodule: %s\n", keepsake.Version, modulePath)
		return nil
	},
}
