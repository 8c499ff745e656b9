package handlers

import (
	"net/http"

	"gallery/models"
	"gallery/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ProfileSaveRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
}

func ProfileShow(c *gin.Context, user *models.User) {
	name := c.Param("name")
	view, err := services.GetProfile(user, name)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func ProfileSave(c *gin.Context, user *models.User) {
	r := ProfileSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	err := services.UpdateProfile(user, services.ProfileUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Description: r.Description,
	})
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// ProfilePhoto replaces the acting user's profile image. Multipart form with
// the image under "profile_image".
func ProfilePhoto(c *gin.Context, user *models.User) {
	file, err := c.FormFile("profile_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"missing file field 'profile_image'"})
		return
	}
	content, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	defer content.Close()

	url, err := services.UpdateProfilePhoto(user, services.PhotoUpload{
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Content:     content,
	})
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "profile_image": url})
}
