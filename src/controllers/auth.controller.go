package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"transferd/src/db"
	"transferd/src/models"
	"transferd/src/types"
	"transferd/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

func AuthRegister(ctx *gin.Context) (*types.AuthResponse, int, error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	fullName := strings.TrimSpace(body.FullName)
	phone := strings.TrimSpace(body.Phone)

	if email == "" || body.Password == "" || fullName == "" || phone == "" {
		return nil, http.StatusBadRequest, errors.New("All fields are required")
	}
	if len(body.Password) < 6 {
		return nil, http.StatusBadRequest, errors.New("Password must be at least 6 characters")
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return nil, http.StatusInternalServerError, errors.New("Registration failed")
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Phone:        phone,
		Role:         types.ROLE_CLIENT,
	}
	d := db.GetDb()
	err = d.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.
			Model(&models.User{}).
			Select("id").
			Where("email = ?", email).
			First(&existing).
			Error
		if err == nil {
			return errors.New("Email already registered")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if err.Error() == "Email already registered" {
			return nil, http.StatusBadRequest, err
		}
		log.Printf("Error registering user [%s]: %s\n", email, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &types.AuthResponse{
		Token: token,
		User: types.UserInfo{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Phone:    user.Phone,
			Role:     user.Role,
		},
	}, http.StatusOK, nil
}

func AuthLogin(ctx *gin.Context) (*types.AuthResponse, int, error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || body.Password == "" {
		return nil, http.StatusBadRequest, errors.New("Email and password are required")
	}

	var user models.User
	d := db.GetDb()
	if err := d.
		Model(&models.User{}).
		Where("email = ?", email).
		First(&user).
		Error; err != nil {
		// Same message whether the account exists or not.
		return nil, http.StatusUnauthorized, errors.New("Invalid email or password")
	}
	if !utils.CheckPassword(user.PasswordHash, body.Password) {
		return nil, http.StatusUnauthorized, errors.New("Invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return &types.AuthResponse{
		Token: token,
		User: types.UserInfo{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Phone:    user.Phone,
			Role:     user.Role,
		},
	}, http.StatusOK, nil
}

// AuthVerify is the one place where expired and malformed tokens are
// reported differently instead of degrading to "unauthenticated".
func AuthVerify(ctx *gin.Context) (*types.Claims, int, error) {
	claims, err := utils.UserFromRequest(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNoBearerToken) {
			return nil, http.StatusUnauthorized, errors.New("Invalid authorization header")
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, http.StatusUnauthorized, errors.New("Token expired")
		}
		return nil, http.StatusUnauthorized, errors.New("Invalid token")
	}
	return claims, http.StatusOK, nil
}
