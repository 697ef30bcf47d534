// Snapshot and restore between the in-memory ledger and the persisted
// types.State. The membership sets persist as their backing sequences; the
// reverse indices are rebuilt on restore.
package ledger

import (
	"fmt"

	"github.com/oakmere/keepsake/pkg/types"
)

// Snapshot copies the full ledger state into a types.State for persistence.
func (l *Ledger) Snapshot() *types.State {
	st := types.NewState(l.owner)
	st.Backend = l.backend
	st.BaseURI = l.baseURI
	st.NextTokenID = l.nextTokenID

	for id, allowed := range l.registrars {
		st.Registrars[id] = allowed
	}
	for id, rec := range l.media {
		st.Media[id] = rec
	}
	for token, owner := range l.tokenOwner {
		st.TokenOwner[token] = owner
	}
	for token, media := range l.tokenMedia {
		st.TokenMedia[token] = media
	}
	for key, token := range l.completions {
		st.Completions[key] = token
	}
	for _, user := range l.userTokens.Groups() {
		st.UserTokens[user] = l.userTokens.Members(user)
	}
	for _, media := range l.completers.Groups() {
		st.Completers[media] = l.completers.Members(media)
	}
	for _, media := range l.groups.Groups() {
		st.GroupMembers[media] = l.groups.Members(media)
	}
	return st
}

// Restore builds a ledger from a persisted state. The state must be
// internally consistent (as produced by Snapshot); Restore validates the
// basics it depends on.
func Restore(st *types.State) (*Ledger, error) {
	if st == nil {
		return nil, fmt.Errorf("restore ledger: nil state")
	}
	if st.Owner == "" {
		return nil, fmt.Errorf("restore ledger: empty owner")
	}
	if st.NextTokenID == 0 {
		return nil, fmt.Errorf("restore ledger: token counter must start at 1")
	}

	l := New(st.Owner)
	l.backend = st.Backend
	l.baseURI = st.BaseURI
	l.nextTokenID = st.NextTokenID

	for id, allowed := range st.Registrars {
		l.registrars[id] = allowed
	}
	for id, rec := range st.Media {
		l.media[id] = rec
	}
	for token, owner := range st.TokenOwner {
		l.tokenOwner[token] = owner
	}
	for token, media := range st.TokenMedia {
		l.tokenMedia[token] = media
	}
	for key, token := range st.Completions {
		l.completions[key] = token
	}
	for user, seq := range st.UserTokens {
		l.userTokens.Load(user, seq)
	}
	for media, seq := range st.Completers {
		l.completers.Load(media, seq)
	}
	for media, seq := range st.GroupMembers {
		l.groups.Load(media, seq)
	}
	return l, nil
}
