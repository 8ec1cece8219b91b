package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assetModel "kostku_backend/internals/features/assets/model"
	notifModel "kostku_backend/internals/features/maintenance/notifications/model"
	"kostku_backend/internals/features/maintenance/schedules/dto"
	"kostku_backend/internals/features/maintenance/schedules/model"
	"kostku_backend/internals/features/maintenance/schedules/service"
	helper "kostku_backend/internals/helpers"
)

type MaintenanceScheduleController struct {
	DB     *gorm.DB
	Engine *service.DueEngine
}

func NewMaintenanceScheduleController(db *gorm.DB) *MaintenanceScheduleController {
	return &MaintenanceScheduleController{
		DB:     db,
		Engine: service.NewDueEngine(db),
	}
}

// 🟢 POST /api/maintenance-schedules
func (ctrl *MaintenanceScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.MaintenanceScheduleCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.MaintenanceScheduleIsGlobal && req.MaintenanceScheduleAssetGroupID == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Jadwal non-global harus terikat grup aset")
	}
	if req.MaintenanceScheduleAssetGroupID != nil {
		var group assetModel.AssetGroupModel
		if err := ctrl.DB.Where("asset_group_id = ?", *req.MaintenanceScheduleAssetGroupID).First(&group).Error; err != nil {
			return helper.DatabaseError(c, err, "Grup aset tidak ditemukan")
		}
	}

	sched := req.ToModel()
	if err := ctrl.Engine.CreateSchedule(c.UserContext(), &sched); err != nil {
		log.Printf("[ERROR] Gagal membuat jadwal perawatan: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat jadwal perawatan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal perawatan berhasil dibuat", dto.ToMaintenanceScheduleResponse(sched))
}

// 🟢 GET /api/maintenance-schedules
func (ctrl *MaintenanceScheduleController) GetSchedules(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "next_due_at", "asc")

	q := ctrl.DB.Model(&model.MaintenanceScheduleModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung jadwal: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal perawatan")
	}

	order := p.OrderClause(map[string]string{
		"next_due_at": "maintenance_schedule_next_due_at",
		"created_at":  "maintenance_schedule_created_at",
		"title":       "maintenance_schedule_title",
	})

	var schedules []model.MaintenanceScheduleModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&schedules).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil jadwal: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal perawatan")
	}

	return helper.Success(c, "Berhasil mengambil jadwal perawatan", fiber.Map{
		"items": dto.ToMaintenanceScheduleResponseList(schedules),
		"meta":  helper.BuildMeta(p, total),
	})
}

// 🟢 GET /api/maintenance-schedules/:id
func (ctrl *MaintenanceScheduleController) GetScheduleByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var sched model.MaintenanceScheduleModel
	if err := ctrl.DB.Where("maintenance_schedule_id = ?", id).First(&sched).Error; err != nil {
		return helper.DatabaseError(c, err, "Jadwal perawatan tidak ditemukan")
	}

	return helper.Success(c, "Berhasil mengambil jadwal perawatan", dto.ToMaintenanceScheduleResponse(sched))
}

// 🟢 PUT /api/maintenance-schedules/:id
func (ctrl *MaintenanceScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.MaintenanceScheduleUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sched model.MaintenanceScheduleModel
	if err := ctrl.DB.Where("maintenance_schedule_id = ?", id).First(&sched).Error; err != nil {
		return helper.DatabaseError(c, err, "Jadwal perawatan tidak ditemukan")
	}

	req.ApplyToModel(&sched)
	if err := ctrl.DB.Save(&sched).Error; err != nil {
		log.Printf("[ERROR] Gagal update jadwal %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update jadwal perawatan")
	}

	return helper.Success(c, "Jadwal perawatan berhasil diupdate", dto.ToMaintenanceScheduleResponse(sched))
}

// 🟢 PATCH /api/maintenance-schedules/:id/done
func (ctrl *MaintenanceScheduleController) MarkAsDone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	sched, err := ctrl.Engine.MarkAsDone(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Jadwal perawatan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal tandai selesai jadwal %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menandai jadwal selesai")
	}

	return helper.Success(c, "Jadwal perawatan ditandai selesai", dto.ToMaintenanceScheduleResponse(*sched))
}

// 🟢 DELETE /api/maintenance-schedules/:id — hapus notifikasi turunannya dulu
func (ctrl *MaintenanceScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var sched model.MaintenanceScheduleModel
		if err := tx.Where("maintenance_schedule_id = ?", id).First(&sched).Error; err != nil {
			return err
		}
		if err := tx.Where("notification_schedule_id = ?", id).
			Delete(&notifModel.NotificationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sched).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Jadwal perawatan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal hapus jadwal %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal perawatan")
	}

	return helper.Success(c, "Jadwal perawatan berhasil dihapus", nil)
}

// 🟢 POST /api/maintenance-schedules/check-due — pemicu manual, logika sama
// persis dengan cron (tidak ada jalur terpisah)
func (ctrl *MaintenanceScheduleController) TriggerDueCheck(c *fiber.Ctx) error {
	created := ctrl.Engine.CheckAndCreateDueNotifications(c.UserContext())
	return helper.Success(c, "Pengecekan jatuh tempo selesai", fiber.Map{
		"notifications_created": created,
	})
}
