package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/features/users/auth/dto"
	"kostku_backend/internals/features/users/auth/model"
	helper "kostku_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Gagal hash password: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hashed),
		UserIsActive: true,
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil", dto.ToUserResponse(user))
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[ERROR] Gagal ambil user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := generateAccessToken(user)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}

// 🟢 POST /api/auth/logout — token masuk blacklist sampai expired
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}
	if tokenString == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	entry := model.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(accessTokenTTL),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		if !strings.Contains(err.Error(), "duplicate key value") {
			log.Printf("[ERROR] Gagal blacklist token: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	return helper.Success(c, "Logout berhasil", nil)
}

func generateAccessToken(user model.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
