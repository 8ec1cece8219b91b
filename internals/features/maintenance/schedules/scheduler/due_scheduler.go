package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/features/maintenance/schedules/service"
)

// StartMaintenanceDueScheduler menjalankan pengecekan jatuh tempo perawatan
// secara berkala. Default: tiap hari jam 08:00. Untuk dev/test bisa
// dipercepat lewat MAINTENANCE_CHECK_INTERVAL (mis. "5m").
func StartMaintenanceDueScheduler(db *gorm.DB) *cron.Cron {
	engine := service.NewDueEngine(db)

	spec := configs.GetEnv("MAINTENANCE_DUE_CRON", "0 8 * * *")
	if interval := configs.GetEnv("MAINTENANCE_CHECK_INTERVAL"); interval != "" {
		spec = "@every " + interval
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] Due scheduler panic: %v", r)
			}
		}()
		created := engine.CheckAndCreateDueNotifications(context.Background())
		log.Printf("[MAINTENANCE] Pengecekan jatuh tempo selesai, %d notifikasi dibuat", created)
	})
	if err != nil {
		log.Printf("[ERROR] Spec cron %q tidak valid, scheduler perawatan tidak jalan: %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("⏱ Maintenance due scheduler aktif (spec: %s)", spec)
	return c
}
