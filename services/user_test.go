package services

import (
	"testing"
	"time"

	"gallery/db"
	"gallery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTest(t)

	user, err := Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	_, err = Register("alice", "other@example.com", "secret123")
	assert.Equal(t, KindConflict, KindOf(err))
	_, err = Register("other", "alice@example.com", "secret123")
	assert.Equal(t, KindConflict, KindOf(err))
	_, err = Register("", "x@example.com", "secret123")
	assert.Equal(t, KindInvalidInput, KindOf(err))

	logged, err := Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = Login("alice@example.com", "wrong")
	assert.Equal(t, KindUnauthorized, KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	setupTest(t)
	alice := testUser(t, "alice")
	testUser(t, "bob")

	// Mark the email verified so we can watch the state reset
	now := time.Now().Unix()
	require.NoError(t, db.Instance.Model(alice).Update("email_verified_at", now).Error)

	desc := "photographer"
	require.NoError(t, UpdateProfile(alice, ProfileUpdate{Description: &desc}))
	reloaded, err := models.UserByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "photographer", reloaded.Description)
	require.NotNil(t, reloaded.EmailVerifiedAt, "description change must not reset verification")

	email := "alice@new.example.com"
	require.NoError(t, UpdateProfile(alice, ProfileUpdate{Email: &email}))
	reloaded, err = models.UserByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, email, reloaded.Email)
	assert.Nil(t, reloaded.EmailVerifiedAt, "email change must clear verification state")

	taken := "bob@example.com"
	err = UpdateProfile(alice, ProfileUpdate{Email: &taken})
	assert.Equal(t, KindConflict, KindOf(err))

	bad := "not-an-email"
	err = UpdateProfile(alice, ProfileUpdate{Email: &bad})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestUpdateProfilePhoto(t *testing.T) {
	setupTest(t)
	alice := testUser(t, "alice")

	url, err := UpdateProfilePhoto(alice, pngUpload("avatar one"))
	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Equal(t, 1, storedBlobCount(t))

	// Replacing removes the previous blob
	_, err = UpdateProfilePhoto(alice, pngUpload("avatar two"))
	require.NoError(t, err)
	assert.Equal(t, 1, storedBlobCount(t))

	_, err = UpdateProfilePhoto(alice, PhotoUpload{ContentType: "text/plain", Size: 4})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestDeleteAccountWrongPassword(t *testing.T) {
	setupTest(t)
	alice := testUser(t, "alice")

	err := DeleteAccount(alice, "nope")
	assert.Equal(t, KindUnauthorized, KindOf(err))

	// The record must be fully intact
	_, err = models.UserByID(alice.ID)
	assert.NoError(t, err)
}

func TestDeleteAccountCascades(t *testing.T) {
	setupTest(t)
	alice := testUser(t, "alice")
	bob := testUser(t, "bob")

	view, err := UploadPhoto(alice, pngUpload("img"))
	require.NoError(t, err)
	_, err = PostComment(bob, view.ID, "bye")
	require.NoError(t, err)
	_, err = ToggleLike(bob, view.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteAccount(alice, "secret123"))

	_, err = models.UserByID(alice.ID)
	assert.Error(t, err)
	_, err = GetPhoto(bob, view.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, 0, storedBlobCount(t))
}

func TestDeleteUser(t *testing.T) {
	setupTest(t)
	alice := testUser(t, "alice")
	bob := testUser(t, "bob")
	admin := testAdmin(t, "root")

	err := DeleteUser(alice, bob.ID)
	assert.Equal(t, KindForbidden, KindOf(err))

	// Self-deletion must go through DeleteAccount and its password check
	err = DeleteUser(admin, admin.ID)
	assert.Equal(t, KindForbidden, KindOf(err))

	err = DeleteUser(admin, 9999)
	assert.Equal(t, KindNotFound, KindOf(err))

	require.NoError(t, DeleteUser(admin, bob.ID))
	_, err = models.UserByID(bob.ID)
	assert.Error(t, err)
}

func TestGetProfileAndListUsers(t *testing.T) {
	setupTest(t)
	alice := testUser(t, "alice")
	bob := testUser(t, "bob")
	testAdmin(t, "root")

	_, err := UploadPhoto(alice, pngUpload("img"))
	require.NoError(t, err)

	profile, err := GetProfile(bob, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Name)
	assert.False(t, profile.IsSelf)
	assert.Len(t, profile.Photos, 1)

	self, err := GetProfile(alice, "alice")
	require.NoError(t, err)
	assert.True(t, self.IsSelf)

	_, err = GetProfile(alice, "nobody")
	assert.Equal(t, KindNotFound, KindOf(err))

	users, err := ListUsers(alice)
	require.NoError(t, err)
	assert.Len(t, users, 2, "admins are not listed")
}
