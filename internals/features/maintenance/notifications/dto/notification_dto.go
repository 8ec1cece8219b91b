package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/maintenance/notifications/model"
)

type NotificationResponse struct {
	NotificationID         uuid.UUID  `json:"notification_id"`
	NotificationTitle      string     `json:"notification_title"`
	NotificationMessage    string     `json:"notification_message"`
	NotificationType       int        `json:"notification_type"`
	NotificationScheduleID *uuid.UUID `json:"notification_schedule_id,omitempty"`
	NotificationTags       []string   `json:"notification_tags,omitempty"`
	NotificationIsRead     bool       `json:"notification_is_read"`
	NotificationReadAt     *time.Time `json:"notification_read_at,omitempty"`
	NotificationCreatedAt  time.Time  `json:"notification_created_at"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID:         m.NotificationID,
		NotificationTitle:      m.NotificationTitle,
		NotificationMessage:    m.NotificationMessage,
		NotificationType:       m.NotificationType,
		NotificationScheduleID: m.NotificationScheduleID,
		NotificationTags:       []string(m.NotificationTags),
		NotificationIsRead:     m.NotificationIsRead,
		NotificationReadAt:     m.NotificationReadAt,
		NotificationCreatedAt:  m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(list []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}
