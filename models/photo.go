package models

import (
	"gallery/db"

	"gorm.io/gorm"
)

type Photo struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Src         string `gorm:"type:varchar(300);not null"` // storage reference
	Alt         string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:varchar(255)"`
	UserID      uint64 `gorm:"index;not null"`
	User        User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func PhotoByID(id uint64) (p Photo, err error) {
	err = db.Instance.First(&p, id).Error
	return
}

// PhotoDelete removes the photo record together with its comments and like
// edges in one transaction. The stored blob is the caller's problem.
func PhotoDelete(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("photo_id = ?", id).Delete(&Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Photo{}, id).Error
	})
}
