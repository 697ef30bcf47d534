// Discussion group membership, gated by completion.
package ledger

import "github.com/oakmere/keepsake/pkg/types"

// JoinGroup adds the caller to the media item's discussion group. The
// caller's completion token is the admission ticket: fails with
// ErrNotCompleted unless the caller completed the media. Joining a group
// the caller is already in succeeds as a no-op.
func (l *Ledger) JoinGroup(caller types.Identity, media types.MediaID) error {
	if !l.HasCompleted(caller, media) {
		return types.ErrNotCompleted
	}
	l.groups.Add(media, caller)
	return nil
}

// LeaveGroup removes the caller from the media item's discussion group.
// Fails with ErrNotGroupMember when the caller is not currently a member.
func (l *Ledger) LeaveGroup(caller types.Identity, media types.MediaID) error {
	if !l.groups.Contains(media, caller) {
		return types.ErrNotGroupMember
	}
	l.groups.Remove(media, caller)
	return nil
}

// CanJoinGroup reports whether user could join the media item's group right
// now: completed and not already a member.
func (l *Ledger) CanJoinGroup(user types.Identity, media types.MediaID) bool {
	return l.HasCompleted(user, media) && !l.groups.Contains(media, user)
}

// IsGroupMember reports whether user is in the media item's group.
func (l *Ledger) IsGroupMember(media types.MediaID, user types.Identity) bool {
	return l.groups.Contains(media, user)
}

// GroupMemberCount returns the size of the media item's group.
func (l *Ledger) GroupMemberCount(media types.MediaID) int {
	return l.groups.Count(media)
}

// GroupMemberAt returns the group member at 0-based position pos. Fails
// with ErrIndexOutOfRange when pos is at or beyond the group size.
// Positions are stable only between mutations of the same group.
func (l *Ledger) GroupMemberAt(media types.MediaID, pos int) (types.Identity, error) {
	member, ok := l.groups.At(media, pos)
	if !ok {
		return "", types.ErrIndexOutOfRange
	}
	return member, nil
}
