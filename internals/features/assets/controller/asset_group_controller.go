package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/features/assets/dto"
	"kostku_backend/internals/features/assets/model"
	scheduleModel "kostku_backend/internals/features/maintenance/schedules/model"
	helper "kostku_backend/internals/helpers"
)

type AssetGroupController struct {
	DB *gorm.DB
}

func NewAssetGroupController(db *gorm.DB) *AssetGroupController {
	return &AssetGroupController{DB: db}
}

func (ctrl *AssetGroupController) itemCount(groupID uuid.UUID) int64 {
	var n int64
	ctrl.DB.Model(&model.AssetItemModel{}).
		Where("asset_item_group_id = ?", groupID).
		Count(&n)
	return n
}

// 🟢 POST /api/asset-groups
func (ctrl *AssetGroupController) CreateAssetGroup(c *fiber.Ctx) error {
	var req dto.AssetGroupCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	group := model.AssetGroupModel{
		AssetGroupName:        req.AssetGroupName,
		AssetGroupDescription: req.AssetGroupDescription,
	}

	if err := ctrl.DB.Create(&group).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat grup aset: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat grup aset")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grup aset berhasil dibuat", dto.ToAssetGroupResponse(group, 0))
}

// 🟢 GET /api/asset-groups
func (ctrl *AssetGroupController) GetAssetGroups(c *fiber.Ctx) error {
	var groups []model.AssetGroupModel
	if err := ctrl.DB.Order("asset_group_name asc").Find(&groups).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil grup aset: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil grup aset")
	}

	items := make([]dto.AssetGroupResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, dto.ToAssetGroupResponse(g, ctrl.itemCount(g.AssetGroupID)))
	}

	return helper.Success(c, "Berhasil mengambil grup aset", items)
}

// 🟢 GET /api/asset-groups/:id
func (ctrl *AssetGroupController) GetAssetGroupByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var group model.AssetGroupModel
	if err := ctrl.DB.Where("asset_group_id = ?", id).First(&group).Error; err != nil {
		return helper.DatabaseError(c, err, "Grup aset tidak ditemukan")
	}

	return helper.Success(c, "Berhasil mengambil grup aset", dto.ToAssetGroupResponse(group, ctrl.itemCount(id)))
}

// 🟢 PUT /api/asset-groups/:id
func (ctrl *AssetGroupController) UpdateAssetGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AssetGroupUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var group model.AssetGroupModel
	if err := ctrl.DB.Where("asset_group_id = ?", id).First(&group).Error; err != nil {
		return helper.DatabaseError(c, err, "Grup aset tidak ditemukan")
	}

	if req.AssetGroupName != nil {
		group.AssetGroupName = *req.AssetGroupName
	}
	if req.AssetGroupDescription != nil {
		group.AssetGroupDescription = req.AssetGroupDescription
	}

	if err := ctrl.DB.Save(&group).Error; err != nil {
		log.Printf("[ERROR] Gagal update grup aset %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update grup aset")
	}

	return helper.Success(c, "Grup aset berhasil diupdate", dto.ToAssetGroupResponse(group, ctrl.itemCount(id)))
}

// 🟢 DELETE /api/asset-groups/:id — tolak kalau masih dirujuk jadwal perawatan
func (ctrl *AssetGroupController) DeleteAssetGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var scheduleCount int64
	if err := ctrl.DB.Model(&scheduleModel.MaintenanceScheduleModel{}).
		Where("maintenance_schedule_asset_group_id = ?", id).
		Count(&scheduleCount).Error; err != nil {
		log.Printf("[ERROR] Gagal cek jadwal perawatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus grup aset")
	}
	if scheduleCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "Grup aset masih dipakai jadwal perawatan")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_item_group_id = ?", id).Delete(&model.AssetItemModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("asset_group_id = ?", id).Delete(&model.AssetGroupModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return helper.DatabaseError(c, err, "Grup aset tidak ditemukan")
	}

	return helper.Success(c, "Grup aset berhasil dihapus", nil)
}
