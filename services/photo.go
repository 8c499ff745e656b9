package services

import (
	"errors"
	"io"
	"strconv"

	"gallery/db"
	"gallery/models"
	"gallery/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhotoUpload carries everything needed to accept one image file.
type PhotoUpload struct {
	ContentType string
	Size        int64
	Content     io.Reader
	Alt         string
	Description string
}

// PhotoUpdate is the whitelist of photo fields an owner may change. Nil means
// "leave alone".
type PhotoUpdate struct {
	Alt         *string
	Description *string
}

type PhotoView struct {
	ID          uint64 `json:"id"`
	Src         string `json:"src"`
	Alt         string `json:"alt,omitempty"`
	Description string `json:"description"`
	Uploader    string `json:"uploader"`
	Profile     string `json:"profile"`
	ProfileLink string `json:"profileLink"`
	LikesCount  int64  `json:"likes_count"`
	LikedByUser bool   `json:"liked_by_user"`
}

type LikeResult struct {
	LikesCount  int64 `json:"likes_count"`
	LikedByUser bool  `json:"liked_by_user"`
}

// UploadPhoto validates the file, stores the blob and only then creates the
// record, so a Photo row never references a blob that was not written.
func UploadPhoto(actor *models.User, upload PhotoUpload) (*PhotoView, error) {
	if err := storage.ValidateUpload(upload.ContentType, upload.Size); err != nil {
		return nil, invalidInput("rejected upload", err)
	}
	ref := storage.LocationPhotos + "/" + uuid.NewString() + storage.ExtFor(upload.ContentType)
	if _, err := storage.GetDefaultStorage().Save(ref, upload.Content); err != nil {
		return nil, storageFailure("cannot store photo", err)
	}
	photo := models.Photo{
		Src:         ref,
		Alt:         upload.Alt,
		Description: upload.Description,
		UserID:      actor.ID,
	}
	if err := db.Instance.Create(&photo).Error; err != nil {
		storage.Remove(ref)
		return nil, dbError("cannot create photo record", err)
	}
	return projectPhoto(&photo, actor)
}

// GetPhoto returns one photo shaped for display, with the uploader identity,
// like count and whether the viewing actor liked it.
func GetPhoto(actor *models.User, photoID uint64) (*PhotoView, error) {
	photo, err := models.PhotoByID(photoID)
	if err != nil {
		return nil, notFound("photo not found")
	}
	return projectPhoto(&photo, actor)
}

func projectPhoto(photo *models.Photo, actor *models.User) (*PhotoView, error) {
	owner, err := models.UserByID(photo.UserID)
	if err != nil {
		return nil, notFound("photo owner not found")
	}
	return &PhotoView{
		ID:          photo.ID,
		Src:         storage.PublicURL(photo.Src),
		Alt:         photo.Alt,
		Description: photo.Description,
		Uploader:    owner.Name,
		Profile:     storage.PublicURL(owner.ProfileImage),
		ProfileLink: "/profile/" + owner.Name,
		LikesCount:  models.LikeCount(photo.ID),
		LikedByUser: models.LikedBy(actor.ID, photo.ID),
	}, nil
}

// DeletePhoto lets the owner or an admin remove a photo. The record and its
// comments and likes go in one transaction; the blob is removed afterwards,
// best-effort.
func DeletePhoto(actor *models.User, photoID uint64) error {
	photo, err := models.PhotoByID(photoID)
	if err != nil {
		return notFound("photo not found")
	}
	if !models.CanDelete(actor.ID, photo.UserID, actor.Role) {
		return forbidden("you are not allowed to delete this photo")
	}
	if err := models.PhotoDelete(photo.ID); err != nil {
		return dbError("cannot delete photo record", err)
	}
	storage.Remove(photo.Src)
	return nil
}

// UpdatePhoto applies an explicit field whitelist. Only the owner may edit,
// admins included out on purpose.
func UpdatePhoto(actor *models.User, photoID uint64, update PhotoUpdate) error {
	photo, err := models.PhotoByID(photoID)
	if err != nil {
		return notFound("photo not found")
	}
	if photo.UserID != actor.ID {
		return forbidden("you are not allowed to edit this photo")
	}
	fields := map[string]interface{}{}
	if update.Alt != nil {
		fields["alt"] = *update.Alt
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if len(fields) == 0 {
		return nil
	}
	if err := db.Instance.Model(&photo).Updates(fields).Error; err != nil {
		return dbError("cannot update photo", err)
	}
	return nil
}

// ToggleLike flips the actor's like on a photo and reports the new state.
func ToggleLike(actor *models.User, photoID uint64) (*LikeResult, error) {
	if _, err := models.PhotoByID(photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("photo " + strconv.FormatUint(photoID, 10) + " not found")
		}
		return nil, dbError("cannot load photo", err)
	}
	count, liked, err := models.ToggleLike(actor.ID, photoID)
	if err != nil {
		return nil, dbError("cannot toggle like", err)
	}
	return &LikeResult{LikesCount: count, LikedByUser: liked}, nil
}
