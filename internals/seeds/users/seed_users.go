package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kostku_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_password"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.UserEmail).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.UserEmail)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.UserEmail, err)
			continue
		}

		newUser := model.UserModel{
			UserName:     data.UserName,
			UserEmail:    data.UserEmail,
			UserPassword: string(hashed),
			UserIsActive: true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.UserEmail, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s'", data.UserEmail)
		}
	}
}
