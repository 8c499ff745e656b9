package models

import (
	"gallery/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Like struct {
	CreatedAt int64
	UserID    uint64 `gorm:"primaryKey;autoIncrement:false"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PhotoID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	Photo     Photo  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// ToggleLike flips the (user, photo) edge and returns the photo's new like
// count together with the state for that user. Delete-then-insert runs in a
// single transaction and the composite primary key makes a duplicate edge
// impossible, so concurrent identical toggles stay consistent.
func ToggleLike(userID, photoID uint64) (count int64, liked bool, err error) {
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND photo_id = ?", userID, photoID).Delete(&Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			like := Like{UserID: userID, PhotoID: photoID}
			res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
			if res.Error != nil {
				return res.Error
			}
			liked = true
		}
		return tx.Model(&Like{}).Where("photo_id = ?", photoID).Count(&count).Error
	})
	if err != nil {
		return 0, false, err
	}
	return count, liked, nil
}

func LikeCount(photoID uint64) (count int64) {
	db.Instance.Model(&Like{}).Where("photo_id = ?", photoID).Count(&count)
	return
}

func LikedBy(userID, photoID uint64) bool {
	var count int64
	db.Instance.Model(&Like{}).Where("user_id = ? AND photo_id = ?", userID, photoID).Count(&count)
	return count > 0
}
