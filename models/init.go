package models

import "gallery/db"

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Photo{})
	db.Instance.AutoMigrate(&Comment{})
	db.Instance.AutoMigrate(&Like{})
}
