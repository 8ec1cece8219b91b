package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/features/assets/dto"
	"kostku_backend/internals/features/assets/model"
	helper "kostku_backend/internals/helpers"
)

type AssetItemController struct {
	DB *gorm.DB
}

func NewAssetItemController(db *gorm.DB) *AssetItemController {
	return &AssetItemController{DB: db}
}

// 🟢 POST /api/asset-items
func (ctrl *AssetItemController) CreateAssetItem(c *fiber.Ctx) error {
	var req dto.AssetItemCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var group model.AssetGroupModel
	if err := ctrl.DB.Where("asset_group_id = ?", req.AssetItemGroupID).First(&group).Error; err != nil {
		return helper.DatabaseError(c, err, "Grup aset tidak ditemukan")
	}

	item := model.AssetItemModel{
		AssetItemGroupID:     group.AssetGroupID,
		AssetItemName:        req.AssetItemName,
		AssetItemCondition:   model.AssetItemConditionGood,
		AssetItemRoomID:      req.AssetItemRoomID,
		AssetItemLocation:    req.AssetItemLocation,
		AssetItemSpec:        req.AssetItemSpec,
		AssetItemPurchasedAt: req.AssetItemPurchasedAt,
		AssetItemPriceIDR:    req.AssetItemPriceIDR,
	}
	if req.AssetItemCondition != nil {
		item.AssetItemCondition = model.AssetItemCondition(*req.AssetItemCondition)
	}

	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat aset: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat aset")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aset berhasil dibuat", dto.ToAssetItemResponse(item))
}

// 🟢 GET /api/asset-items?group_id=&room_id=
func (ctrl *AssetItemController) GetAssetItems(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AssetItemModel{})
	if groupID := c.Query("group_id"); groupID != "" {
		q = q.Where("asset_item_group_id = ?", groupID)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("asset_item_room_id = ?", roomID)
	}

	var items []model.AssetItemModel
	if err := q.Order("asset_item_name asc").Find(&items).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil aset: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil aset")
	}

	return helper.Success(c, "Berhasil mengambil aset", dto.ToAssetItemResponseList(items))
}

// 🟢 GET /api/asset-items/:id
func (ctrl *AssetItemController) GetAssetItemByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var item model.AssetItemModel
	if err := ctrl.DB.Where("asset_item_id = ?", id).First(&item).Error; err != nil {
		return helper.DatabaseError(c, err, "Aset tidak ditemukan")
	}

	return helper.Success(c, "Berhasil mengambil aset", dto.ToAssetItemResponse(item))
}

// 🟢 PUT /api/asset-items/:id
func (ctrl *AssetItemController) UpdateAssetItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AssetItemUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.AssetItemModel
	if err := ctrl.DB.Where("asset_item_id = ?", id).First(&item).Error; err != nil {
		return helper.DatabaseError(c, err, "Aset tidak ditemukan")
	}

	req.ApplyToModel(&item)

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Printf("[ERROR] Gagal update aset %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update aset")
	}

	return helper.Success(c, "Aset berhasil diupdate", dto.ToAssetItemResponse(item))
}

// 🟢 DELETE /api/asset-items/:id
func (ctrl *AssetItemController) DeleteAssetItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("asset_item_id = ?", id).Delete(&model.AssetItemModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus aset %s: %v", id, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus aset")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Aset tidak ditemukan")
	}

	return helper.Success(c, "Aset berhasil dihapus", nil)
}
