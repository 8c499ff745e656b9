package handlers

import (
	"net/http"
	"strings"

	"gallery/models"
	"gallery/services"
	"gallery/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PhotoGetRequest struct {
	ID uint64 `form:"id" binding:"required"`
}
type PhotoSaveRequest struct {
	ID          uint64  `json:"id" binding:"required"`
	Alt         *string `json:"alt"`
	Description *string `json:"description"`
}
type PhotoDeleteRequest struct {
	ID uint64 `json:"id" binding:"required"`
}
type PhotoLikeRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

func PhotoFeed(c *gin.Context, user *models.User) {
	result, err := services.ListFeed(user)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PhotoUpload accepts a multipart form with the image under "src" plus
// optional "alt" and "description" fields.
func PhotoUpload(c *gin.Context, user *models.User) {
	file, err := c.FormFile("src")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"missing file field 'src'"})
		return
	}
	content, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	defer content.Close()

	view, err := services.UploadPhoto(user, services.PhotoUpload{
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Content:     content,
		Alt:         c.PostForm("alt"),
		Description: c.PostForm("description"),
	})
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func PhotoGet(c *gin.Context, user *models.User) {
	r := PhotoGetRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	view, err := services.GetPhoto(user, r.ID)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func PhotoSave(c *gin.Context, user *models.User) {
	r := PhotoSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	err := services.UpdatePhoto(user, r.ID, services.PhotoUpdate{
		Alt:         r.Alt,
		Description: r.Description,
	})
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func PhotoDelete(c *gin.Context, user *models.User) {
	r := PhotoDeleteRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := services.DeletePhoto(user, r.ID); err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func PhotoLike(c *gin.Context, user *models.User) {
	r := PhotoLikeRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	result, err := services.ToggleLike(user, r.ID)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FileFetch serves a stored blob from the default bucket. S3-backed buckets
// answer with a presigned redirect instead of proxying the bytes.
func FileFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		c.JSON(http.StatusBadRequest, Response{"bad path"})
		return
	}
	storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
}
