package services

import (
	"errors"
	"strings"

	"healthtrack/config"
	"healthtrack/models"
	"healthtrack/utils"
)

func RegisterUser(email, password, fullName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid credentials")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func UpdateProfile(userID uint, fullName string) (*models.User, error) {
	user, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}
	user.FullName = fullName
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
