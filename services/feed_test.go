package services

import (
	"testing"
	"time"

	"gallery/db"
	"gallery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFeed(t *testing.T) {
	setupTest(t)
	alice := testUser(t, "alice")
	bob := testUser(t, "bob")
	admin := testAdmin(t, "root")

	first, err := UploadPhoto(alice, pngUpload("one"))
	require.NoError(t, err)
	require.NoError(t, db.Instance.Model(&models.Photo{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Unix()-10).Error)
	second, err := UploadPhoto(bob, pngUpload("two"))
	require.NoError(t, err)

	_, err = ToggleLike(bob, first.ID)
	require.NoError(t, err)
	_, err = ToggleLike(alice, first.ID)
	require.NoError(t, err)

	feed, err := ListFeed(bob)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// Newest first
	assert.Equal(t, second.ID, feed[0].ID)
	assert.Equal(t, "bob", feed[0].Uploader)
	assert.Equal(t, int64(0), feed[0].LikesCount)
	assert.False(t, feed[0].LikedByUser)

	assert.Equal(t, first.ID, feed[1].ID)
	assert.Equal(t, "alice", feed[1].Uploader)
	assert.Equal(t, "/profile/alice", feed[1].ProfileLink)
	assert.Equal(t, int64(2), feed[1].LikesCount)
	assert.True(t, feed[1].LikedByUser)

	// The viewer's own role is echoed on every item
	assert.Equal(t, models.RoleUser, feed[0].Usertype)
	adminFeed, err := ListFeed(admin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, adminFeed[0].Usertype)
	assert.False(t, adminFeed[1].LikedByUser, "liked flags are per-viewer")
}
