package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contractModel "kostku_backend/internals/features/rentals/contracts/model"
	"kostku_backend/internals/features/rentals/rooms/dto"
	"kostku_backend/internals/features/rentals/rooms/model"
	helper "kostku_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// roomStatus — maintenance menang atas occupied
func roomStatus(room model.RoomModel, occupied bool) string {
	if room.RoomIsUnderMaintenance {
		return "maintenance"
	}
	if occupied {
		return "occupied"
	}
	return "available"
}

func (ctrl *RoomController) occupiedRoomIDs() (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := ctrl.DB.Model(&contractModel.ContractModel{}).
		Where("contract_status = ?", contractModel.ContractStatusActive).
		Pluck("contract_room_id", &ids).Error
	if err != nil {
		return nil, err
	}
	occupied := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		occupied[id] = true
	}
	return occupied, nil
}

// 🟢 POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req dto.RoomCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	room := model.RoomModel{
		RoomName:    req.RoomName,
		RoomFloor:   req.RoomFloor,
		RoomRentIDR: req.RoomRentIDR,
		RoomNote:    req.RoomNote,
	}
	if room.RoomFloor == 0 {
		room.RoomFloor = 1
	}

	if err := ctrl.DB.Create(&room).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat kamar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kamar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kamar berhasil dibuat", dto.ToRoomResponse(room, "available"))
}

// 🟢 GET /api/rooms — status dihitung dari kontrak aktif
func (ctrl *RoomController) GetRooms(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "name", "asc")

	q := ctrl.DB.Model(&model.RoomModel{})
	if floor := c.Query("floor"); floor != "" {
		q = q.Where("room_floor = ?", floor)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung kamar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	order := p.OrderClause(map[string]string{
		"name":     "room_name",
		"floor":    "room_floor",
		"rent_idr": "room_rent_idr",
	})

	var rooms []model.RoomModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rooms).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil kamar: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	occupied, err := ctrl.occupiedRoomIDs()
	if err != nil {
		log.Printf("[ERROR] Gagal ambil kontrak aktif: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	items := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, dto.ToRoomResponse(r, roomStatus(r, occupied[r.RoomID])))
	}

	// filter status setelah derivasi (status tidak ada di tabel)
	if want := c.Query("status"); want != "" {
		filtered := items[:0]
		for _, it := range items {
			if it.RoomStatus == want {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	return helper.Success(c, "Berhasil mengambil kamar", fiber.Map{
		"items": items,
		"meta":  helper.BuildMeta(p, total),
	})
}

// 🟢 GET /api/rooms/:id
func (ctrl *RoomController) GetRoomByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var room model.RoomModel
	if err := ctrl.DB.Where("room_id = ?", id).First(&room).Error; err != nil {
		return helper.DatabaseError(c, err, "Kamar tidak ditemukan")
	}

	var activeCount int64
	if err := ctrl.DB.Model(&contractModel.ContractModel{}).
		Where("contract_room_id = ? AND contract_status = ?", id, contractModel.ContractStatusActive).
		Count(&activeCount).Error; err != nil {
		log.Printf("[ERROR] Gagal cek kontrak aktif: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	return helper.Success(c, "Berhasil mengambil kamar", dto.ToRoomResponse(room, roomStatus(room, activeCount > 0)))
}

// 🟢 PUT /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.RoomUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var room model.RoomModel
	if err := ctrl.DB.Where("room_id = ?", id).First(&room).Error; err != nil {
		return helper.DatabaseError(c, err, "Kamar tidak ditemukan")
	}

	req.ApplyToModel(&room)

	if err := ctrl.DB.Save(&room).Error; err != nil {
		log.Printf("[ERROR] Gagal update kamar %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update kamar")
	}

	var activeCount int64
	ctrl.DB.Model(&contractModel.ContractModel{}).
		Where("contract_room_id = ? AND contract_status = ?", id, contractModel.ContractStatusActive).
		Count(&activeCount)

	return helper.Success(c, "Kamar berhasil diupdate", dto.ToRoomResponse(room, roomStatus(room, activeCount > 0)))
}

// 🟢 POST /api/rooms/:id/image — upload foto kamar, disimpan sebagai WebP
func (ctrl *RoomController) UploadRoomImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var room model.RoomModel
	if err := ctrl.DB.Where("room_id = ?", id).First(&room).Error; err != nil {
		return helper.DatabaseError(c, err, "Kamar tidak ditemukan")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File image wajib diisi")
	}

	publicPath, err := helper.SaveImageAsWebp("rooms", fileHeader)
	if err != nil {
		log.Printf("[ERROR] Gagal simpan foto kamar %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}

	// hapus foto lama biar uploads/ tidak menumpuk
	if room.RoomImageURL != nil {
		helper.RemoveUploadedFile(*room.RoomImageURL)
	}

	room.RoomImageURL = &publicPath
	if err := ctrl.DB.Save(&room).Error; err != nil {
		log.Printf("[ERROR] Gagal update foto kamar %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update kamar")
	}

	return helper.Success(c, "Foto kamar berhasil diupload", fiber.Map{
		"room_image_url": publicPath,
	})
}

// 🟢 DELETE /api/rooms/:id — tolak kalau masih ada kontrak aktif
func (ctrl *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var activeCount int64
	if err := ctrl.DB.Model(&contractModel.ContractModel{}).
		Where("contract_room_id = ? AND contract_status = ?", id, contractModel.ContractStatusActive).
		Count(&activeCount).Error; err != nil {
		log.Printf("[ERROR] Gagal cek kontrak aktif: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kamar")
	}
	if activeCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "Kamar masih punya kontrak aktif")
	}

	res := ctrl.DB.Where("room_id = ?", id).Delete(&model.RoomModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus kamar %s: %v", id, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kamar")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Kamar tidak ditemukan")
	}

	return helper.Success(c, "Kamar berhasil dihapus", nil)
}
