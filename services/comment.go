package services

import (
	"strings"

	"gallery/db"
	"gallery/models"
)

type CommentAuthor struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type CommentView struct {
	ID        uint64        `json:"id"`
	Content   string        `json:"content"`
	Author    CommentAuthor `json:"author"`
	CreatedAt int64         `json:"created_at"`
}

// ListComments returns a photo's comments newest-first with the author
// identity attached.
func ListComments(actor *models.User, photoID uint64) ([]CommentView, error) {
	if _, err := models.PhotoByID(photoID); err != nil {
		return nil, notFound("photo not found")
	}
	rows, err := db.Instance.Table("comments").
		Select("comments.id, comments.content, comments.created_at, users.id, users.name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.photo_id = ?", photoID).
		Order("comments.created_at DESC, comments.id DESC").
		Rows()
	if err != nil {
		return nil, dbError("cannot load comments", err)
	}
	defer rows.Close()

	result := []CommentView{}
	for rows.Next() {
		view := CommentView{}
		if err = rows.Scan(&view.ID, &view.Content, &view.CreatedAt, &view.Author.ID, &view.Author.Name); err != nil {
			return nil, dbError("cannot scan comment", err)
		}
		result = append(result, view)
	}
	return result, nil
}

// PostComment creates a comment by the actor on an existing photo.
func PostComment(actor *models.User, photoID uint64, content string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalidInput("comment content must not be empty", nil)
	}
	if _, err := models.PhotoByID(photoID); err != nil {
		return nil, notFound("photo not found")
	}
	comment := models.Comment{
		PhotoID: photoID,
		UserID:  actor.ID,
		Content: content,
	}
	if err := db.Instance.Create(&comment).Error; err != nil {
		return nil, dbError("cannot create comment", err)
	}
	return &CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    CommentAuthor{ID: actor.ID, Name: actor.Name},
		CreatedAt: comment.CreatedAt,
	}, nil
}

// DeleteComment removes a comment. Only its author may do so - the photo's
// owner and admins are refused as well.
func DeleteComment(actor *models.User, commentID uint64) error {
	var comment models.Comment
	if err := db.Instance.First(&comment, commentID).Error; err != nil {
		return notFound("comment not found")
	}
	if !models.CanDeleteComment(actor.ID, comment.UserID) {
		return forbidden("Unauthorized")
	}
	if err := db.Instance.Delete(&models.Comment{}, commentID).Error; err != nil {
		return dbError("cannot delete comment", err)
	}
	return nil
}
