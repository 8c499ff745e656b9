package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	photo := createTestPhoto(t, alice)

	count, liked, err := ToggleLike(bob.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
	assert.True(t, LikedBy(bob.ID, photo.ID))

	// Second user's like is independent
	count, liked, err = ToggleLike(alice.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(2), count)

	// Unlike brings bob back to the original state
	count, liked, err = ToggleLike(bob.ID, photo.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(1), count)
	assert.False(t, LikedBy(bob.ID, photo.ID))
}

func TestToggleLikeDoubleToggleIsIdempotent(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	photo := createTestPhoto(t, alice)

	_, liked, err := ToggleLike(alice.ID, photo.ID)
	require.NoError(t, err)
	require.True(t, liked)

	count, liked, err := ToggleLike(alice.ID, photo.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, int64(0), LikeCount(photo.ID))
}

// The count returned by ToggleLike must always equal the live edge count.
func TestLikeCountMatchesEdges(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	photo := createTestPhoto(t, alice)

	for i := 0; i < 5; i++ {
		count, _, err := ToggleLike(alice.ID, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeCount(photo.ID), count)
	}
}

// Concurrent toggles on the same (user, photo) pair must never produce a
// duplicate edge or a count that disagrees with the edge set.
func TestToggleLikeConcurrentSamePair(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	photo := createTestPhoto(t, alice)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = ToggleLike(alice.ID, photo.ID)
		}()
	}
	wg.Wait()

	count := LikeCount(photo.ID)
	assert.LessOrEqual(t, count, int64(1))
	assert.Equal(t, count > 0, LikedBy(alice.ID, photo.ID))
}
