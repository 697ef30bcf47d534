package types

// TokenID identifies one completion token. IDs are allocated from a single
// counter starting at 1 and are never reused, even after a burn. Zero is the
// sentinel for "no token".
type TokenID uint64

// CompletionKey is the composite key for the completion record map. The
// field order is part of the key shape: always (User, Media), never the
// reverse.
type CompletionKey struct {
	User  Identity
	Media MediaID
}
