// Completion lifecycle: mint (record a completion) and burn. These are the
// only paths that create or destroy tokens, and each one updates every
// affected collection as a unit.
package ledger

import (
	"math"

	"github.com/oakmere/keepsake/pkg/types"
)

// CompleteAndRegister records that the to identity completed the media item
// described by (kind, uri, name), registering the item in the catalog if it
// is not registered yet, and mints the completion token. Backend only.
//
// Fails with ErrAlreadyCompleted when to already holds a token for this
// media; the failed attempt consumes no token ID.
func (l *Ledger) CompleteAndRegister(caller, to types.Identity, kind uint8, uri, name string) (types.TokenID, error) {
	if err := l.requireBackend(caller); err != nil {
		return 0, err
	}
	id := l.registerOrGet(kind, uri, name)
	return l.recordCompletion(to, id)
}

// recordCompletion mints the completion token for (user, media). It is the
// sole mint path. All validations run before any collection is touched.
func (l *Ledger) recordCompletion(user types.Identity, media types.MediaID) (types.TokenID, error) {
	key := types.CompletionKey{User: user, Media: media}
	if l.completions[key] != 0 {
		return 0, types.ErrAlreadyCompleted
	}
	if l.nextTokenID == math.MaxUint64 {
		return 0, types.ErrTokenOverflow
	}

	token := l.nextTokenID
	l.nextTokenID++

	l.tokenOwner[token] = user
	l.tokenMedia[token] = media
	l.completions[key] = token
	l.userTokens.Add(user, token)
	l.completers.Add(media, user)

	return token, nil
}

// Burn destroys the caller's token: the ownership entry, the completion
// record, the token's slot in the caller's holdings, the caller's completer
// entry, and the caller's group membership for that media (a no-op when not
// a member). Fails with ErrNotTokenOwner unless the caller owns the token;
// nothing is removed on rejection.
func (l *Ledger) Burn(caller types.Identity, token types.TokenID) error {
	owner, ok := l.tokenOwner[token]
	if !ok || owner != caller {
		return types.ErrNotTokenOwner
	}
	media := l.tokenMedia[token]

	delete(l.tokenOwner, token)
	delete(l.tokenMedia, token)
	delete(l.completions, types.CompletionKey{User: caller, Media: media})
	l.userTokens.Remove(caller, token)
	l.completers.Remove(media, caller)
	l.groups.Remove(media, caller)

	return nil
}

// HasCompleted reports whether user holds a completion token for media.
func (l *Ledger) HasCompleted(user types.Identity, media types.MediaID) bool {
	return l.completions[types.CompletionKey{User: user, Media: media}] != 0
}

// UserTokenIDs returns the tokens user currently holds. Order carries no
// meaning.
func (l *Ledger) UserTokenIDs(user types.Identity) []types.TokenID {
	return l.userTokens.Members(user)
}
