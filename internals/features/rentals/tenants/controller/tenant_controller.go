package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contractModel "kostku_backend/internals/features/rentals/contracts/model"
	"kostku_backend/internals/features/rentals/tenants/dto"
	"kostku_backend/internals/features/rentals/tenants/model"
	helper "kostku_backend/internals/helpers"
)

type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

// 🟢 POST /api/tenants
func (ctrl *TenantController) CreateTenant(c *fiber.Ctx) error {
	var req dto.TenantCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tenant := model.TenantModel{
		TenantName:           req.TenantName,
		TenantPhone:          req.TenantPhone,
		TenantEmail:          req.TenantEmail,
		TenantIdentityNumber: req.TenantIdentityNumber,
		TenantNote:           req.TenantNote,
	}

	if err := ctrl.DB.Create(&tenant).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat penyewa: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat penyewa")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penyewa berhasil dibuat", dto.ToTenantDetailResponse(tenant))
}

// 🟢 GET /api/tenants — search by nama / telepon
func (ctrl *TenantController) GetTenants(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "name", "asc")

	q := ctrl.DB.Model(&model.TenantModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("tenant_name ILIKE ? OR tenant_phone ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung penyewa: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil penyewa")
	}

	order := p.OrderClause(map[string]string{
		"name":       "tenant_name",
		"created_at": "tenant_created_at",
	})

	var tenants []model.TenantModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&tenants).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil penyewa: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil penyewa")
	}

	return helper.Success(c, "Berhasil mengambil penyewa", fiber.Map{
		"items": dto.ToTenantResponseList(tenants),
		"meta":  helper.BuildMeta(p, total),
	})
}

// 🟢 GET /api/tenants/:id
func (ctrl *TenantController) GetTenantByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var tenant model.TenantModel
	if err := ctrl.DB.Where("tenant_id = ?", id).First(&tenant).Error; err != nil {
		return helper.DatabaseError(c, err, "Penyewa tidak ditemukan")
	}

	return helper.Success(c, "Berhasil mengambil penyewa", dto.ToTenantDetailResponse(tenant))
}

// 🟢 PUT /api/tenants/:id
func (ctrl *TenantController) UpdateTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.TenantUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tenant model.TenantModel
	if err := ctrl.DB.Where("tenant_id = ?", id).First(&tenant).Error; err != nil {
		return helper.DatabaseError(c, err, "Penyewa tidak ditemukan")
	}

	req.ApplyToModel(&tenant)

	if err := ctrl.DB.Save(&tenant).Error; err != nil {
		log.Printf("[ERROR] Gagal update penyewa %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update penyewa")
	}

	return helper.Success(c, "Penyewa berhasil diupdate", dto.ToTenantDetailResponse(tenant))
}

// 🟢 DELETE /api/tenants/:id — tolak kalau masih punya kontrak aktif
func (ctrl *TenantController) DeleteTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var activeCount int64
	if err := ctrl.DB.Model(&contractModel.ContractModel{}).
		Where("contract_tenant_id = ? AND contract_status = ?", id, contractModel.ContractStatusActive).
		Count(&activeCount).Error; err != nil {
		log.Printf("[ERROR] Gagal cek kontrak aktif: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus penyewa")
	}
	if activeCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "Penyewa masih punya kontrak aktif")
	}

	res := ctrl.DB.Where("tenant_id = ?", id).Delete(&model.TenantModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus penyewa %s: %v", id, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus penyewa")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Penyewa tidak ditemukan")
	}

	return helper.Success(c, "Penyewa berhasil dihapus", nil)
}
