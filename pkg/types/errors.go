package types

import "errors"

// Capability errors. Every mutating ledger operation declares exactly one
// caller requirement; these are the rejections.
var (
	ErrNotOwner      = errors.New("caller is not the catalog owner")
	ErrNotBackend    = errors.New("caller is not the backend service")
	ErrNotTokenOwner = errors.New("caller does not own the token")
)

// Ledger state errors.
var (
	ErrAlreadyCompleted   = errors.New("completion already recorded for this user and media")
	ErrMediaNotRegistered = errors.New("media is not registered")
	ErrNotCompleted       = errors.New("user has not completed this media")
	ErrNotGroupMember     = errors.New("user is not a group member")
	ErrTokenNotFound      = errors.New("token does not exist")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrTokenOverflow      = errors.New("token id counter exhausted")
	ErrUnknownKind        = errors.New("unknown media kind")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
