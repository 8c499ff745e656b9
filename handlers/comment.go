package handlers

import (
	"net/http"

	"gallery/models"
	"gallery/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CommentListRequest struct {
	PhotoID uint64 `form:"photo_id" binding:"required"`
}
type CommentCreateRequest struct {
	PhotoID uint64 `json:"photo_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}
type CommentDeleteRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

func CommentList(c *gin.Context, user *models.User) {
	r := CommentListRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	result, err := services.ListComments(user, r.PhotoID)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func CommentCreate(c *gin.Context, user *models.User) {
	r := CommentCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	view, err := services.PostComment(user, r.PhotoID, r.Content)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func CommentDelete(c *gin.Context, user *models.User) {
	r := CommentDeleteRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := services.DeleteComment(user, r.ID); err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
