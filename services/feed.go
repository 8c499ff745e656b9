package services

import (
	"gallery/db"
	"gallery/models"
	"gallery/storage"
)

type FeedItem struct {
	ID          uint64      `json:"id"`
	Src         string      `json:"src"`
	Description string      `json:"description"`
	Uploader    string      `json:"uploader"`
	Profile     string      `json:"profile"`
	ProfileLink string      `json:"profileLink"`
	Usertype    models.Role `json:"usertype"`
	LikesCount  int64       `json:"likes_count"`
	LikedByUser bool        `json:"liked_by_user"`
}

// ListFeed returns every photo, newest first, with the uploader identity,
// like count and whether the viewing actor liked each one. The viewer's own
// role is echoed on every item (the clients render admin controls off it).
func ListFeed(actor *models.User) ([]FeedItem, error) {
	rows, err := db.Instance.Table("photos").
		Select("photos.id, photos.src, photos.description, users.name, users.profile_image").
		Joins("JOIN users ON users.id = photos.user_id").
		Order("photos.created_at DESC, photos.id DESC").
		Rows()
	if err != nil {
		return nil, dbError("cannot load feed", err)
	}
	defer rows.Close()

	result := []FeedItem{}
	for rows.Next() {
		var (
			item         FeedItem
			profileImage string
		)
		if err = rows.Scan(&item.ID, &item.Src, &item.Description, &item.Uploader, &profileImage); err != nil {
			return nil, dbError("cannot scan feed row", err)
		}
		item.Src = storage.PublicURL(item.Src)
		item.Profile = storage.PublicURL(profileImage)
		item.ProfileLink = "/profile/" + item.Uploader
		item.Usertype = actor.Role
		result = append(result, item)
	}

	counts := map[uint64]int64{}
	countRows, err := db.Instance.Table("likes").
		Select("photo_id, COUNT(*)").
		Group("photo_id").
		Rows()
	if err != nil {
		return nil, dbError("cannot load like counts", err)
	}
	defer countRows.Close()
	for countRows.Next() {
		var (
			photoID uint64
			count   int64
		)
		if err = countRows.Scan(&photoID, &count); err != nil {
			return nil, dbError("cannot scan like count", err)
		}
		counts[photoID] = count
	}

	var likedIDs []uint64
	if err := db.Instance.Model(&models.Like{}).
		Where("user_id = ?", actor.ID).
		Pluck("photo_id", &likedIDs).Error; err != nil {
		return nil, dbError("cannot load likes", err)
	}
	liked := map[uint64]bool{}
	for _, id := range likedIDs {
		liked[id] = true
	}

	for i := range result {
		result[i].LikesCount = counts[result[i].ID]
		result[i].LikedByUser = liked[result[i].ID]
	}
	return result, nil
}
