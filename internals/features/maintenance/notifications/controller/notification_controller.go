package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/features/maintenance/notifications/dto"
	"kostku_backend/internals/features/maintenance/notifications/model"
	helper "kostku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/notifications?unread_only=true
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "created_at", "desc")

	q := ctrl.DB.Model(&model.NotificationModel{})
	if c.QueryBool("unread_only") {
		q = q.Where("notification_is_read = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung notifikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	order := p.OrderClause(map[string]string{
		"created_at": "notification_created_at",
		"type":       "notification_type",
	})

	var notifs []model.NotificationModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil notifikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.Success(c, "Berhasil mengambil notifikasi", fiber.Map{
		"items": dto.ToNotificationResponseList(notifs),
		"meta":  helper.BuildMeta(p, total),
	})
}

// 🟢 PUT /api/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	readTime := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_is_read = FALSE", notifID).
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": readTime,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal update notifikasi sebagai dibaca: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}
	if res.RowsAffected == 0 {
		// sudah dibaca atau tidak ada
		var exists int64
		ctrl.DB.Model(&model.NotificationModel{}).Where("notification_id = ?", notifID).Count(&exists)
		if exists == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
	}

	return helper.Success(c, "Notifikasi ditandai sebagai dibaca", nil)
}

// 🟢 PUT /api/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	readTime := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_is_read = FALSE").
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": readTime,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal tandai semua notifikasi: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}

	return helper.Success(c, "Semua notifikasi ditandai sebagai dibaca", fiber.Map{
		"updated": res.RowsAffected,
	})
}

// 🟢 DELETE /api/notifications/:id
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Where("notification_id = ?", notifID).Delete(&model.NotificationModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal hapus notifikasi: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.Success(c, "Notifikasi berhasil dihapus", nil)
}
