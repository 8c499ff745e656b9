package services

import (
	"strings"

	"gallery/db"
	"gallery/models"
	"gallery/storage"

	"github.com/google/uuid"
)

// ProfileUpdate is the whitelist of profile fields a user may change about
// themselves. Nil means "leave alone".
type ProfileUpdate struct {
	Name        *string
	Email       *string
	Description *string
}

type UserView struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email,omitempty"`
	Role         models.Role `json:"usertype"`
	Description  string      `json:"description,omitempty"`
	ProfileImage string      `json:"profile_image"`
}

type ProfileView struct {
	User   UserView    `json:"user"`
	Photos []PhotoView `json:"photos"`
	IsSelf bool        `json:"isCurrentUser"`
}

// Register creates a new regular account. Name and email must be unused.
func Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, invalidInput("name, email and password are required", nil)
	}
	if models.UserTaken(name, email, 0) {
		return nil, conflict("name or email already in use")
	}
	user, err := models.UserCreate(name, email, password)
	if err != nil {
		return nil, dbError("cannot create user", err)
	}
	return &user, nil
}

// Login verifies credentials and returns the account. The session layer is
// the caller's business.
func Login(email, password string) (*models.User, error) {
	user, ok := models.UserLogin(email, password)
	if !ok {
		return nil, unauthorized("wrong email or password")
	}
	return &user, nil
}

// UpdateProfile merges the whitelisted fields onto the actor's own record.
// Changing the email clears the email-verification state.
func UpdateProfile(actor *models.User, update ProfileUpdate) error {
	fields := map[string]interface{}{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return invalidInput("name must not be empty", nil)
		}
		fields["name"] = name
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email == "" || !strings.Contains(email, "@") {
			return invalidInput("a valid email is required", nil)
		}
		if email != actor.Email {
			fields["email"] = email
			fields["email_verified_at"] = nil
		}
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if len(fields) == 0 {
		return nil
	}
	name, email := actor.Name, actor.Email
	if v, ok := fields["name"]; ok {
		name = v.(string)
	}
	if v, ok := fields["email"]; ok {
		email = v.(string)
	}
	if models.UserTaken(name, email, actor.ID) {
		return conflict("name or email already in use")
	}
	if err := db.Instance.Model(actor).Updates(fields).Error; err != nil {
		return dbError("cannot update profile", err)
	}
	return nil
}

// UpdateProfilePhoto stores a new profile image and replaces the old
// reference. The previous blob is removed best-effort.
func UpdateProfilePhoto(actor *models.User, upload PhotoUpload) (string, error) {
	if err := storage.ValidateUpload(upload.ContentType, upload.Size); err != nil {
		return "", invalidInput("rejected profile image", err)
	}
	ref := storage.LocationProfiles + "/" + uuid.NewString() + storage.ExtFor(upload.ContentType)
	if _, err := storage.GetDefaultStorage().Save(ref, upload.Content); err != nil {
		return "", storageFailure("cannot store profile image", err)
	}
	oldRef := actor.ProfileImage
	if err := db.Instance.Model(actor).Update("profile_image", ref).Error; err != nil {
		storage.Remove(ref)
		return "", dbError("cannot update profile image", err)
	}
	storage.Remove(oldRef)
	return storage.PublicURL(ref), nil
}

// DeleteAccount removes the actor's own account after they re-enter their
// current password. Blobs for their photos and profile image are cleaned up
// after the cascade commits.
func DeleteAccount(actor *models.User, password string) error {
	if !actor.CheckPassword(password) {
		return unauthorized("wrong password")
	}
	refs, err := models.UserDelete(actor.ID)
	if err != nil {
		return dbError("cannot delete account", err)
	}
	for _, ref := range refs {
		storage.Remove(ref)
	}
	return nil
}

// DeleteUser removes another account, admins only (deleting yourself goes
// through DeleteAccount and its password check).
func DeleteUser(actor *models.User, targetID uint64) error {
	if !models.CanDelete(actor.ID, targetID, actor.Role) || actor.ID == targetID {
		return forbidden("you are not allowed to delete this user")
	}
	if _, err := models.UserByID(targetID); err != nil {
		return notFound("user not found")
	}
	refs, err := models.UserDelete(targetID)
	if err != nil {
		return dbError("cannot delete user", err)
	}
	for _, ref := range refs {
		storage.Remove(ref)
	}
	return nil
}

// GetProfile returns a user by their unique name slug along with their
// photos, shaped for the profile page.
func GetProfile(actor *models.User, name string) (*ProfileView, error) {
	user, err := models.UserByName(name)
	if err != nil {
		return nil, notFound("user not found")
	}
	var photos []models.Photo
	if err := db.Instance.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&photos).Error; err != nil {
		return nil, dbError("cannot load photos", err)
	}
	view := &ProfileView{
		User:   projectUser(&user),
		Photos: []PhotoView{},
		IsSelf: actor.ID == user.ID,
	}
	for i := range photos {
		pv, err := projectPhoto(&photos[i], actor)
		if err != nil {
			return nil, err
		}
		view.Photos = append(view.Photos, *pv)
	}
	return view, nil
}

// ListUsers returns all regular (non-admin) accounts.
func ListUsers(actor *models.User) ([]UserView, error) {
	var users []models.User
	if err := db.Instance.Where("role = ?", models.RoleUser).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, dbError("cannot list users", err)
	}
	result := []UserView{}
	for i := range users {
		result = append(result, projectUser(&users[i]))
	}
	return result, nil
}

func projectUser(user *models.User) UserView {
	return UserView{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Description:  user.Description,
		ProfileImage: storage.PublicURL(user.ProfileImage),
	}
}
