package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmere/keepsake/pkg/types"
)

func TestCompleteAndRegister(t *testing.T) {
	t.Run("first token id is 1", func(t *testing.T) {
		l := newTestLedger(t)
		token := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		assert.Equal(t, types.TokenID(1), token)
	})

	t.Run("mint updates every collection", func(t *testing.T) {
		l := newTestLedger(t)
		token := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		id := ComputeMediaID(types.KindMovie, "https://example.com/heat", "Heat")

		assert.True(t, l.HasCompleted(alice, id))

		tokenOwner, err := l.OwnerOf(token)
		require.NoError(t, err)
		assert.Equal(t, alice, tokenOwner)

		assert.Equal(t, []types.TokenID{token}, l.UserTokenIDs(alice))

		similars, err := l.SimilarsForToken(token)
		require.NoError(t, err)
		assert.Empty(t, similars, "alice is the only completer")
	})

	t.Run("completer appears exactly once", func(t *testing.T) {
		l := newTestLedger(t)
		token := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		complete(t, l, bob, types.KindMovie, "https://example.com/heat", "Heat")

		similars, err := l.SimilarsForToken(token)
		require.NoError(t, err)
		assert.Equal(t, []types.Identity{bob}, similars)
	})

	t.Run("non-backend caller rejected", func(t *testing.T) {
		l := newTestLedger(t)
		_, err := l.CompleteAndRegister(alice, alice, types.KindMovie, "u", "n")
		assert.ErrorIs(t, err, types.ErrNotBackend)

		// Reassigning the backend made the owner lose the capability too.
		_, err = l.CompleteAndRegister(owner, alice, types.KindMovie, "u", "n")
		assert.ErrorIs(t, err, types.ErrNotBackend)
	})

	t.Run("duplicate completion rejected without consuming an id", func(t *testing.T) {
		l := newTestLedger(t)
		complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")

		_, err := l.CompleteAndRegister(backend, alice, types.KindMovie, "https://example.com/heat", "Heat")
		assert.ErrorIs(t, err, types.ErrAlreadyCompleted)

		// The failed attempt must not have consumed a token id.
		next := complete(t, l, bob, types.KindMovie, "https://example.com/heat", "Heat")
		assert.Equal(t, types.TokenID(2), next)
	})

	t.Run("token ids are strictly increasing across users and media", func(t *testing.T) {
		l := newTestLedger(t)
		t1 := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		t2 := complete(t, l, alice, types.KindBook, "https://example.com/dune", "Dune")
		t3 := complete(t, l, bob, types.KindMovie, "https://example.com/heat", "Heat")
		assert.Equal(t, types.TokenID(1), t1)
		assert.Equal(t, types.TokenID(2), t2)
		assert.Equal(t, types.TokenID(3), t3)
	})
}

func TestBurn(t *testing.T) {
	t.Run("full inverse of mint", func(t *testing.T) {
		l := newTestLedger(t)
		token := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		complete(t, l, bob, types.KindMovie, "https://example.com/heat", "Heat")
		id := ComputeMediaID(types.KindMovie, "https://example.com/heat", "Heat")
		require.NoError(t, l.JoinGroup(alice, id))

		require.NoError(t, l.Burn(alice, token))

		_, err := l.OwnerOf(token)
		assert.ErrorIs(t, err, types.ErrTokenNotFound)
		assert.False(t, l.HasCompleted(alice, id))
		assert.Empty(t, l.UserTokenIDs(alice))
		assert.False(t, l.IsGroupMember(id, alice))

		// Bob's view must be untouched and alice gone from the completers.
		assert.True(t, l.HasCompleted(bob, id))
		bobToken := l.UserTokenIDs(bob)[0]
		similars, err := l.SimilarsForToken(bobToken)
		require.NoError(t, err)
		assert.Empty(t, similars)
	})

	t.Run("burn without group membership", func(t *testing.T) {
		l := newTestLedger(t)
		token := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		require.NoError(t, l.Burn(alice, token))
		id := ComputeMediaID(types.KindMovie, "https://example.com/heat", "Heat")
		assert.False(t, l.HasCompleted(alice, id))
	})

	t.Run("non-owner caller rejected with no mutation", func(t *testing.T) {
		l := newTestLedger(t)
		token := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")

		err := l.Burn(bob, token)
		assert.ErrorIs(t, err, types.ErrNotTokenOwner)

		tokenOwner, err := l.OwnerOf(token)
		require.NoError(t, err)
		assert.Equal(t, alice, tokenOwner)
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		l := newTestLedger(t)
		err := l.Burn(alice, 99)
		assert.ErrorIs(t, err, types.ErrNotTokenOwner)
	})

	t.Run("burned ids are never reissued", func(t *testing.T) {
		l := newTestLedger(t)
		t1 := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		require.NoError(t, l.Burn(alice, t1))

		t2 := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		assert.Equal(t, types.TokenID(2), t2, "counter keeps increasing after burn")
	})

	t.Run("re-completion after burn is allowed", func(t *testing.T) {
		l := newTestLedger(t)
		id := ComputeMediaID(types.KindMovie, "https://example.com/heat", "Heat")
		t1 := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		require.NoError(t, l.Burn(alice, t1))
		require.False(t, l.HasCompleted(alice, id))

		complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
		assert.True(t, l.HasCompleted(alice, id))
	})
}

func TestUserTokenIDs(t *testing.T) {
	l := newTestLedger(t)
	t1 := complete(t, l, alice, types.KindMovie, "https://example.com/heat", "Heat")
	t2 := complete(t, l, alice, types.KindBook, "https://example.com/dune", "Dune")
	t3 := complete(t, l, alice, types.KindAnime, "https://example.com/akira", "Akira")

	assert.ElementsMatch(t, []types.TokenID{t1, t2, t3}, l.UserTokenIDs(alice))

	require.NoError(t, l.Burn(alice, t2))
	assert.ElementsMatch(t, []types.TokenID{t1, t3}, l.UserTokenIDs(alice))

	assert.Empty(t, l.UserTokenIDs(bob))
}
