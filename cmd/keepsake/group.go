// Group commands: completion-gated discussion group membership.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/pkg/types"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage media discussion groups",
}

func init() {
	groupCmd.AddCommand(groupJoinCmd)
	groupCmd.AddCommand(groupLeaveCmd)
	groupCmd.AddCommand(groupCanJoinCmd)
	groupCmd.AddCommand(groupIsMemberCmd)
	groupCmd.AddCommand(groupMembersCmd)
	groupCmd.AddCommand(groupMemberAtCmd)
}

var groupJoinCmd = &cobra.Command{
	Use:   "join MEDIA_ID",
	Short: "Join a media item's discussion group",
	Long: `Join the discussion group for a media item. The caller must have
completed the item; joining again is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := callerIdentity()
		if err != nil {
			return err
		}
		return withLedger(true, func(l *ledger.Ledger) error {
			return l.JoinGroup(caller, types.MediaID(args[0]))
		})
	},
}

var groupLeaveCmd = &cobra.Command{
	Use:   "leave MEDIA_ID",
	Short: "Leave a media item's discussion group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := callerIdentity()
		if err != nil {
			return err
		}
		return withLedger(true, func(l *ledger.Ledger) error {
			return l.LeaveGroup(caller, types.MediaID(args[0]))
		})
	},
}

var groupCanJoinCmd = &cobra.Command{
	Use:   "can-join USER MEDIA_ID",
	Short: "Check whether a user could join a group right now",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(l *ledger.Ledger) error {
			ok := l.CanJoinGroup(types.Identity(args[0]), types.MediaID(args[1]))
			return printBool(cmd, "can_join", ok)
		})
	},
}

var groupIsMemberCmd = &cobra.Command{
	Use:   "is-member MEDIA_ID USER",
	Short: "Check whether a user is in a media item's group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(l *ledger.Ledger) error {
			ok := l.IsGroupMember(types.MediaID(args[0]), types.Identity(args[1]))
			return printBool(cmd, "is_member", ok)
		})
	},
}

var groupMembersCmd = &cobra.Command{
	Use:   "members MEDIA_ID",
	Short: "List a media item's group members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(false, func(l *ledger.Ledger) error {
			media := types.MediaID(args[0])
			count := l.GroupMemberCount(media)
			members := make([]string, 0, count)
			for i := 0; i < count; i++ {
				member, err := l.GroupMemberAt(media, i)
				if err != nil {
					return err
				}
				members = append(members, string(member))
			}
			if flagJSON {
				return printJSON(cmd, map[string]any{"count": count, "members": members})
			}
			for _, m := range members {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		})
	},
}

var groupMemberAtCmd = &cobra.Command{
	Use:   "member-at MEDIA_ID INDEX",
	Short: "Show the group member at a position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[1])
		}
		return withLedger(false, func(l *ledger.Ledger) error {
			member, err := l.GroupMemberAt(types.MediaID(args[0]), index)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, map[string]string{"member": string(member)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), member)
			return nil
		})
	},
}
