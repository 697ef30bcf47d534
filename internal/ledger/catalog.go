// Media catalog operations: registration and owner-gated metadata edits.
package ledger

import "github.com/oakmere/keepsake/pkg/types"

// registerOrGet computes the MediaID for the triple and ensures a registered
// catalog entry exists for it. Idempotent: a triple that already has a
// registered entry is returned unchanged. Because the identifier is a hash
// of exactly these fields, a present entry can only have been created from
// identical inputs, so nothing is overwritten.
func (l *Ledger) registerOrGet(kind uint8, uri, name string) types.MediaID {
	id := ComputeMediaID(kind, uri, name)
	if rec, ok := l.media[id]; ok && rec.Registered {
		return id
	}
	l.media[id] = types.Media{Kind: kind, Registered: true, URI: uri, Name: name}
	return id
}

// SetMediaURI replaces the explicit URI of a registered media item.
// Owner only. Fails with ErrMediaNotRegistered when the item is unknown or
// not registered.
func (l *Ledger) SetMediaURI(caller types.Identity, id types.MediaID, uri string) error {
	if err := l.requireOwner(caller); err != nil {
		return err
	}
	rec, ok := l.media[id]
	if !ok || !rec.Registered {
		return types.ErrMediaNotRegistered
	}
	rec.URI = uri
	l.media[id] = rec
	return nil
}

// SetMediaKind replaces the kind code of a registered media item.
// Owner only. Fails with ErrMediaNotRegistered when the item is unknown or
// not registered.
func (l *Ledger) SetMediaKind(caller types.Identity, id types.MediaID, kind uint8) error {
	if err := l.requireOwner(caller); err != nil {
		return err
	}
	rec, ok := l.media[id]
	if !ok || !rec.Registered {
		return types.ErrMediaNotRegistered
	}
	rec.Kind = kind
	l.media[id] = rec
	return nil
}

// MediaInfo returns the catalog record for id. The second return is false
// when the id is unknown; the record is then zero-valued.
func (l *Ledger) MediaInfo(id types.MediaID) (types.Media, bool) {
	rec, ok := l.media[id]
	return rec, ok
}
