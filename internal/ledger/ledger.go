// Package ledger implements the media completion ledger: the media catalog,
// the completion/token lifecycle, group membership, and the read-only query
// surface over them.
//
// A Ledger is a plain in-memory structure with no locking; the hosting
// platform executes one operation at a time and owns durability. Every
// mutating operation validates before it mutates, so a rejected call leaves
// the ledger untouched, and a successful call leaves every collection
// mutually consistent: a completion record always has a matching token
// owner, user token entry, and media completer entry.
package ledger

import (
	"github.com/oakmere/keepsake/pkg/indexset"
	"github.com/oakmere/keepsake/pkg/mediaid"
	"github.com/oakmere/keepsake/pkg/types"
)

// Ledger owns all named state collections. Collections are created empty at
// construction and mutated only through Ledger methods.
type Ledger struct {
	owner       types.Identity
	backend     types.Identity
	baseURI     string
	nextTokenID types.TokenID

	registrars  map[types.Identity]bool
	media       map[types.MediaID]types.Media
	tokenOwner  map[types.TokenID]types.Identity
	tokenMedia  map[types.TokenID]types.MediaID
	completions map[types.CompletionKey]types.TokenID

	userTokens *indexset.Set[types.Identity, types.TokenID]
	completers *indexset.Set[types.MediaID, types.Identity]
	groups     *indexset.Set[types.MediaID, types.Identity]
}

// New returns an empty Ledger owned by owner. The backend identity starts
// as the owner; the owner reassigns it with SetBackend. Token IDs start
// at 1.
func New(owner types.Identity) *Ledger {
	return &Ledger{
		owner:       owner,
		backend:     owner,
		nextTokenID: 1,
		registrars:  make(map[types.Identity]bool),
		media:       make(map[types.MediaID]types.Media),
		tokenOwner:  make(map[types.TokenID]types.Identity),
		tokenMedia:  make(map[types.TokenID]types.MediaID),
		completions: make(map[types.CompletionKey]types.TokenID),
		userTokens:  indexset.New[types.Identity, types.TokenID](),
		completers:  indexset.New[types.MediaID, types.Identity](),
		groups:      indexset.New[types.MediaID, types.Identity](),
	}
}

// ComputeMediaID derives the content identifier for a (kind, uri, name)
// triple. Pure; requires no state.
func ComputeMediaID(kind uint8, uri, name string) types.MediaID {
	return mediaid.Compute(kind, uri, name)
}

// Owner returns the catalog owner identity.
func (l *Ledger) Owner() types.Identity { return l.owner }

// Backend returns the identity authorized to record completions.
func (l *Ledger) Backend() types.Identity { return l.backend }

// BaseURI returns the configured display-URI prefix.
func (l *Ledger) BaseURI() string { return l.baseURI }

// IsRegistrar reports whether identity is on the registrar allow-list.
// The list is an administrative capability toggle; no ledger operation
// consults it yet.
func (l *Ledger) IsRegistrar(identity types.Identity) bool {
	return l.registrars[identity]
}

// SetRegistrar records identity on the registrar allow-list. Owner only.
func (l *Ledger) SetRegistrar(caller, registrar types.Identity, allowed bool) error {
	if err := l.requireOwner(caller); err != nil {
		return err
	}
	l.registrars[registrar] = allowed
	return nil
}

// SetBackend reassigns the backend identity. Owner only.
func (l *Ledger) SetBackend(caller, backend types.Identity) error {
	if err := l.requireOwner(caller); err != nil {
		return err
	}
	l.backend = backend
	return nil
}

// SetBaseURI sets the display-URI prefix used by TokenURI when a media item
// has no explicit URI. Owner only.
func (l *Ledger) SetBaseURI(caller types.Identity, baseURI string) error {
	if err := l.requireOwner(caller); err != nil {
		return err
	}
	l.baseURI = baseURI
	return nil
}

// requireOwner rejects callers other than the catalog owner.
func (l *Ledger) requireOwner(caller types.Identity) error {
	if caller != l.owner {
		return types.ErrNotOwner
	}
	return nil
}

// requireBackend rejects callers other than the backend service.
func (l *Ledger) requireBackend(caller types.Identity) error {
	if caller != l.backend {
		return types.ErrNotBackend
	}
	return nil
}
