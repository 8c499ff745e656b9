package models

import (
	"gallery/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID              uint64 `gorm:"primaryKey"`
	CreatedAt       int64
	UpdatedAt       int64
	Name            string `gorm:"type:varchar(100);index:uniq_name,unique"`
	Email           string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password        string `gorm:"type:varchar(100)" json:"-"`
	Role            Role   `gorm:"type:varchar(10);not null;default:user"`
	Description     string `gorm:"type:text"`
	ProfileImage    string `gorm:"type:varchar(300)"` // storage reference, empty means none
	EmailVerifiedAt *int64
}

func UserCreate(name, email, plainTextPassword string) (u User, err error) {
	u.Name = name
	u.Email = email
	u.Role = RoleUser
	if err = u.SetPassword(plainTextPassword); err != nil {
		return
	}
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *User) CheckPassword(plainTextPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) == nil
}

func UserLogin(email, plainTextPassword string) (u User, success bool) {
	if db.Instance.First(&u, "email = ?", email).Error != nil {
		return User{}, false
	}
	if !u.CheckPassword(plainTextPassword) {
		return User{}, false
	}
	return u, true
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	return
}

func UserByName(name string) (u User, err error) {
	err = db.Instance.First(&u, "name = ?", name).Error
	return
}

// UserTaken reports whether another user already holds the given name or
// email. exceptID excludes the user being updated.
func UserTaken(name, email string, exceptID uint64) bool {
	var count int64
	db.Instance.Model(&User{}).
		Where("(name = ? OR email = ?) AND id != ?", name, email, exceptID).
		Count(&count)
	return count > 0
}

// UserDelete removes the user and everything hanging off them - their
// comments and likes, their photos, and the comments and likes on those
// photos - in a single transaction so a partial cascade is never visible.
// It returns the storage references that should be cleaned up afterwards.
func UserDelete(id uint64) (blobRefs []string, err error) {
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		var photoIDs []uint64
		if err := tx.Model(&Photo{}).Where("user_id = ?", id).Pluck("id", &photoIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&Photo{}).Where("user_id = ?", id).Pluck("src", &blobRefs).Error; err != nil {
			return err
		}
		if user.ProfileImage != "" {
			blobRefs = append(blobRefs, user.ProfileImage)
		}
		if len(photoIDs) > 0 {
			if err := tx.Where("photo_id IN ?", photoIDs).Delete(&Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("photo_id IN ?", photoIDs).Delete(&Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&Photo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return blobRefs, nil
}
