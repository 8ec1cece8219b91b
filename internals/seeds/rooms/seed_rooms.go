package rooms

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"kostku_backend/internals/features/rentals/rooms/model"
)

type RoomSeed struct {
	RoomName    string `json:"room_name"`
	RoomFloor   int    `json:"room_floor"`
	RoomRentIDR int    `json:"room_rent_idr"`
}

func SeedRoomsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file kamar:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []RoomSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.RoomModel
		if err := db.Where("room_name = ?", data.RoomName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kamar '%s' sudah ada, dilewati.", data.RoomName)
			continue
		}

		newRoom := model.RoomModel{
			RoomName:    data.RoomName,
			RoomFloor:   data.RoomFloor,
			RoomRentIDR: data.RoomRentIDR,
		}

		if err := db.Create(&newRoom).Error; err != nil {
			log.Printf("❌ Gagal insert kamar '%s': %v", data.RoomName, err)
		} else {
			log.Printf("✅ Berhasil insert kamar '%s'", data.RoomName)
		}
	}
}
