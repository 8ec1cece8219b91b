package seeds

import (
	"gorm.io/gorm"

	rooms "kostku_backend/internals/seeds/rooms"
	users "kostku_backend/internals/seeds/users"
)

// RunAllSeeds — dipanggil manual lewat RUN_SEEDS=true
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	rooms.SeedRoomsFromJSON(db, "internals/seeds/rooms/data_rooms.json")
}
