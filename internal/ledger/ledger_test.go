package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmere/keepsake/pkg/types"
)

// Test identities. The owner doubles as the backend until reassigned.
const (
	owner   = types.Identity("owner-1")
	backend = types.Identity("backend-1")
	alice   = types.Identity("alice")
	bob     = types.Identity("bob")
	carol   = types.Identity("carol")
)

// newTestLedger returns a ledger owned by owner with backend reassigned to
// backend.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New(owner)
	require.NoError(t, l.SetBackend(owner, backend))
	return l
}

// complete mints a token for user over the given triple, failing the test
// on error.
func complete(t *testing.T, l *Ledger, user types.Identity, kind uint8, uri, name string) types.TokenID {
	t.Helper()
	token, err := l.CompleteAndRegister(backend, user, kind, uri, name)
	require.NoError(t, err)
	return token
}

func TestNew(t *testing.T) {
	l := New(owner)
	assert.Equal(t, owner, l.Owner())
	assert.Equal(t, owner, l.Backend(), "backend starts as the owner")
	assert.Empty(t, l.BaseURI())
}

func TestSetBackend(t *testing.T) {
	t.Run("owner reassigns", func(t *testing.T) {
		l := New(owner)
		require.NoError(t, l.SetBackend(owner, backend))
		assert.Equal(t, backend, l.Backend())
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		l := New(owner)
		err := l.SetBackend(alice, alice)
		assert.ErrorIs(t, err, types.ErrNotOwner)
		assert.Equal(t, owner, l.Backend())
	})
}

func TestSetRegistrar(t *testing.T) {
	t.Run("owner toggles the allow-list", func(t *testing.T) {
		l := New(owner)
		require.NoError(t, l.SetRegistrar(owner, alice, true))
		assert.True(t, l.IsRegistrar(alice))
		require.NoError(t, l.SetRegistrar(owner, alice, false))
		assert.False(t, l.IsRegistrar(alice))
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		l := New(owner)
		err := l.SetRegistrar(alice, alice, true)
		assert.ErrorIs(t, err, types.ErrNotOwner)
	})
}

func TestSetBaseURI(t *testing.T) {
	l := New(owner)
	require.NoError(t, l.SetBaseURI(owner, "https://media.example/"))
	assert.Equal(t, "https://media.example/", l.BaseURI())

	err := l.SetBaseURI(bob, "https://evil.example/")
	assert.ErrorIs(t, err, types.ErrNotOwner)
	assert.Equal(t, "https://media.example/", l.BaseURI())
}

func TestMediaCatalog(t *testing.T) {
	t.Run("mint registers the media", func(t *testing.T) {
		l := newTestLedger(t)
		complete(t, l, alice, types.KindAnime, "https://example.com/one-piece", "One Piece")

		id := ComputeMediaID(types.KindAnime, "https://example.com/one-piece", "One Piece")
		rec, ok := l.MediaInfo(id)
		require.True(t, ok)
		assert.True(t, rec.Registered)
		assert.Equal(t, types.KindAnime, rec.Kind)
		assert.Equal(t, "https://example.com/one-piece", rec.URI)
		assert.Equal(t, "One Piece", rec.Name)
	})

	t.Run("second mint does not overwrite metadata", func(t *testing.T) {
		l := newTestLedger(t)
		complete(t, l, alice, types.KindAnime, "https://example.com/one-piece", "One Piece")
		complete(t, l, bob, types.KindAnime, "https://example.com/one-piece", "One Piece")

		id := ComputeMediaID(types.KindAnime, "https://example.com/one-piece", "One Piece")
		rec, ok := l.MediaInfo(id)
		require.True(t, ok)
		assert.Equal(t, "One Piece", rec.Name)
	})

	t.Run("unknown media", func(t *testing.T) {
		l := newTestLedger(t)
		rec, ok := l.MediaInfo("deadbeef")
		assert.False(t, ok)
		assert.Zero(t, rec)
	})

	t.Run("set-uri on registered media", func(t *testing.T) {
		l := newTestLedger(t)
		complete(t, l, alice, types.KindBook, "https://example.com/dune", "Dune")
		id := ComputeMediaID(types.KindBook, "https://example.com/dune", "Dune")

		require.NoError(t, l.SetMediaURI(owner, id, "https://cdn.example/dune"))
		rec, _ := l.MediaInfo(id)
		assert.Equal(t, "https://cdn.example/dune", rec.URI)
	})

	t.Run("set-uri requires owner", func(t *testing.T) {
		l := newTestLedger(t)
		complete(t, l, alice, types.KindBook, "https://example.com/dune", "Dune")
		id := ComputeMediaID(types.KindBook, "https://example.com/dune", "Dune")

		err := l.SetMediaURI(alice, id, "https://cdn.example/dune")
		assert.ErrorIs(t, err, types.ErrNotOwner)
	})

	t.Run("set-uri on unknown media", func(t *testing.T) {
		l := newTestLedger(t)
		err := l.SetMediaURI(owner, "deadbeef", "https://cdn.example/x")
		assert.ErrorIs(t, err, types.ErrMediaNotRegistered)
	})

	t.Run("set-kind on registered media", func(t *testing.T) {
		l := newTestLedger(t)
		complete(t, l, alice, types.KindShow, "https://example.com/akira", "Akira")
		id := ComputeMediaID(types.KindShow, "https://example.com/akira", "Akira")

		require.NoError(t, l.SetMediaKind(owner, id, types.KindAnime))
		rec, _ := l.MediaInfo(id)
		assert.Equal(t, types.KindAnime, rec.Kind)
	})

	t.Run("set-kind on unknown media", func(t *testing.T) {
		l := newTestLedger(t)
		err := l.SetMediaKind(owner, "deadbeef", types.KindMovie)
		assert.ErrorIs(t, err, types.ErrMediaNotRegistered)
	})
}
