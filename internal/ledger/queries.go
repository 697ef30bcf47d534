// Read-only derived queries over tokens and completions.
package ledger

import "github.com/oakmere/keepsake/pkg/types"

// OwnerOf returns the identity holding token. Fails with ErrTokenNotFound
// for an unknown (or burned) token.
func (l *Ledger) OwnerOf(token types.TokenID) (types.Identity, error) {
	owner, ok := l.tokenOwner[token]
	if !ok {
		return "", types.ErrTokenNotFound
	}
	return owner, nil
}

// TokenURI resolves the display URI for token: the media item's explicit
// URI when non-empty, otherwise the configured base URI prefix followed by
// the media id, otherwise empty. Fails with ErrTokenNotFound for an unknown
// token.
func (l *Ledger) TokenURI(token types.TokenID) (string, error) {
	if _, ok := l.tokenOwner[token]; !ok {
		return "", types.ErrTokenNotFound
	}
	media := l.tokenMedia[token]
	if rec, ok := l.media[media]; ok && rec.URI != "" {
		return rec.URI, nil
	}
	if l.baseURI == "" {
		return "", nil
	}
	return l.baseURI + string(media), nil
}

// CanText reports whether from and to both completed the media item.
func (l *Ledger) CanText(from, to types.Identity, media types.MediaID) bool {
	return l.HasCompleted(from, media) && l.HasCompleted(to, media)
}

// SimilarsForToken returns the other completers of the token's media item,
// excluding the token's owner. Fails with ErrTokenNotFound for an unknown
// token.
func (l *Ledger) SimilarsForToken(token types.TokenID) ([]types.Identity, error) {
	owner, ok := l.tokenOwner[token]
	if !ok {
		return nil, types.ErrTokenNotFound
	}
	media := l.tokenMedia[token]

	var out []types.Identity
	for _, candidate := range l.completersOf(media) {
		if candidate != owner {
			out = append(out, candidate)
		}
	}
	return out, nil
}

// SimilarsFromTokens returns the de-duplicated union of completers across
// the media items of all given tokens, excluding the tokens' owner. Every
// token must belong to the owner of the first one; fails with
// ErrNotTokenOwner otherwise and with ErrTokenNotFound when the first token
// is unknown. An empty input yields an empty result.
func (l *Ledger) SimilarsFromTokens(tokens []types.TokenID) ([]types.Identity, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	owner, ok := l.tokenOwner[tokens[0]]
	if !ok {
		return nil, types.ErrTokenNotFound
	}

	seen := make(map[types.Identity]bool)
	var out []types.Identity
	for _, token := range tokens {
		holder, ok := l.tokenOwner[token]
		if !ok || holder != owner {
			return nil, types.ErrNotTokenOwner
		}
		media := l.tokenMedia[token]
		for _, candidate := range l.completersOf(media) {
			if candidate == owner || seen[candidate] {
				continue
			}
			seen[candidate] = true
			out = append(out, candidate)
		}
	}
	return out, nil
}

// completersOf returns the completer sequence for media.
func (l *Ledger) completersOf(media types.MediaID) []types.Identity {
	return l.completers.Members(media)
}
