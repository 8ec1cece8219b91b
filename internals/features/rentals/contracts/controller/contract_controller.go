package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/features/rentals/contracts/dto"
	"kostku_backend/internals/features/rentals/contracts/model"
	roomModel "kostku_backend/internals/features/rentals/rooms/model"
	tenantModel "kostku_backend/internals/features/rentals/tenants/model"
	helper "kostku_backend/internals/helpers"
)

type ContractController struct {
	DB *gorm.DB
}

func NewContractController(db *gorm.DB) *ContractController {
	return &ContractController{DB: db}
}

// 🟢 POST /api/contracts — satu kamar maksimal satu kontrak aktif
func (ctrl *ContractController) CreateContract(c *fiber.Ctx) error {
	var req dto.ContractCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var room roomModel.RoomModel
	if err := ctrl.DB.Where("room_id = ?", req.ContractRoomID).First(&room).Error; err != nil {
		return helper.DatabaseError(c, err, "Kamar tidak ditemukan")
	}

	var tenant tenantModel.TenantModel
	if err := ctrl.DB.Where("tenant_id = ?", req.ContractTenantID).First(&tenant).Error; err != nil {
		return helper.DatabaseError(c, err, "Penyewa tidak ditemukan")
	}

	var activeCount int64
	if err := ctrl.DB.Model(&model.ContractModel{}).
		Where("contract_room_id = ? AND contract_status = ?", room.RoomID, model.ContractStatusActive).
		Count(&activeCount).Error; err != nil {
		log.Printf("[ERROR] Gagal cek kontrak aktif: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kontrak")
	}
	if activeCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "Kamar masih punya kontrak aktif")
	}

	rent := room.RoomRentIDR
	if req.ContractRentIDR != nil {
		rent = *req.ContractRentIDR
	}

	contract := model.ContractModel{
		ContractRoomID:      room.RoomID,
		ContractTenantID:    tenant.TenantID,
		ContractRentIDR:     rent,
		ContractWaterIDR:    req.ContractWaterIDR,
		ContractElectricIDR: req.ContractElectricIDR,
		ContractStartDate:   req.ContractStartDate,
		ContractEndDate:     req.ContractEndDate,
		ContractStatus:      model.ContractStatusActive,
		ContractNote:        req.ContractNote,
	}

	if err := ctrl.DB.Create(&contract).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat kontrak: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kontrak")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kontrak berhasil dibuat", dto.ToContractResponse(contract))
}

// 🟢 GET /api/contracts
func (ctrl *ContractController) GetContracts(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "created_at", "desc")

	q := ctrl.DB.Model(&model.ContractModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("contract_status = ?", status)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("contract_room_id = ?", roomID)
	}
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		q = q.Where("contract_tenant_id = ?", tenantID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung kontrak: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kontrak")
	}

	order := p.OrderClause(map[string]string{
		"created_at": "contract_created_at",
		"start_date": "contract_start_date",
	})

	var contracts []model.ContractModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&contracts).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil kontrak: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kontrak")
	}

	return helper.Success(c, "Berhasil mengambil kontrak", fiber.Map{
		"items": dto.ToContractResponseList(contracts),
		"meta":  helper.BuildMeta(p, total),
	})
}

// 🟢 GET /api/contracts/:id
func (ctrl *ContractController) GetContractByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var contract model.ContractModel
	if err := ctrl.DB.Where("contract_id = ?", id).First(&contract).Error; err != nil {
		return helper.DatabaseError(c, err, "Kontrak tidak ditemukan")
	}

	return helper.Success(c, "Berhasil mengambil kontrak", dto.ToContractResponse(contract))
}

// 🟢 PUT /api/contracts/:id
func (ctrl *ContractController) UpdateContract(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ContractUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var contract model.ContractModel
	if err := ctrl.DB.Where("contract_id = ?", id).First(&contract).Error; err != nil {
		return helper.DatabaseError(c, err, "Kontrak tidak ditemukan")
	}

	req.ApplyToModel(&contract)

	if err := ctrl.DB.Save(&contract).Error; err != nil {
		log.Printf("[ERROR] Gagal update kontrak %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update kontrak")
	}

	return helper.Success(c, "Kontrak berhasil diupdate", dto.ToContractResponse(contract))
}

// 🟢 PATCH /api/contracts/:id/end — akhiri kontrak (check-out penyewa)
func (ctrl *ContractController) EndContract(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var contract model.ContractModel
	if err := ctrl.DB.Where("contract_id = ?", id).First(&contract).Error; err != nil {
		return helper.DatabaseError(c, err, "Kontrak tidak ditemukan")
	}
	if contract.ContractStatus != model.ContractStatusActive {
		return helper.Error(c, fiber.StatusConflict, "Kontrak sudah tidak aktif")
	}

	now := time.Now()
	contract.ContractStatus = model.ContractStatusEnded
	contract.ContractEndDate = &now

	if err := ctrl.DB.Save(&contract).Error; err != nil {
		log.Printf("[ERROR] Gagal akhiri kontrak %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengakhiri kontrak")
	}

	return helper.Success(c, "Kontrak berhasil diakhiri", dto.ToContractResponse(contract))
}

// 🟢 DELETE /api/contracts/:id — hanya kontrak yang batal sebelum mulai
func (ctrl *ContractController) DeleteContract(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var contract model.ContractModel
	if err := ctrl.DB.Where("contract_id = ?", id).First(&contract).Error; err != nil {
		return helper.DatabaseError(c, err, "Kontrak tidak ditemukan")
	}
	if contract.ContractStatus == model.ContractStatusActive {
		return helper.Error(c, fiber.StatusConflict, "Kontrak aktif tidak bisa dihapus, akhiri dulu")
	}

	if err := ctrl.DB.Delete(&contract).Error; err != nil {
		log.Printf("[ERROR] Gagal hapus kontrak %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kontrak")
	}

	return helper.Success(c, "Kontrak berhasil dihapus", nil)
}
