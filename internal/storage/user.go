package storage

import (
	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/internal/models"
)

func GetUserByEmail(db *gormw.DB, email string) (*models.User, error) {
	user := &models.User{}
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *gormw.DB, id uint) (*models.User, error) {
	user := &models.User{}
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *gormw.DB, user *models.User) error {
	return db.Create(user).Error
}

func CountUsers(db *gormw.DB) (int64, error) {
	var n int64
	err := db.Model(&models.User{}).Count(&n).Error
	return n, err
}
