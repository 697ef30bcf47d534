// Output helpers shared by subcommands: plain text by default, JSON with
// the --json flag.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oakmere/keepsake/pkg/types"
)

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printBool writes a boolean result under the given JSON key.
func printBool(cmd *cobra.Command, key string, value bool) error {
	if flagJSON {
		return printJSON(cmd, map[string]bool{key: value})
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(value))
	return nil
}

// parseKindArg accepts either a kind label ("anime") or a numeric kind
// code ("2").
func parseKindArg(arg string) (uint8, error) {
	if kind, err := types.ParseKind(arg); err == nil {
		return kind, nil
	}
	code, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid kind %q: expected a label (movie, anime, comic, book, manga, show) or a code 0-255", arg)
	}
	return uint8(code), nil
}

// parseTokenArg parses a token id argument.
func parseTokenArg(arg string) (types.TokenID, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q", arg)
	}
	return types.TokenID(id), nil
}
