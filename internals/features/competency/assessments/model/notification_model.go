// file: internals/features/competency/assessments/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// =========================
// Enum: Notification Event
// =========================

type NotificationEvent string

const (
	NotificationEventSubmitted  NotificationEvent = "assessment_submitted"
	NotificationEventApproved   NotificationEvent = "assessment_approved"
	NotificationEventRejected   NotificationEvent = "assessment_rejected"
	NotificationEventReassigned NotificationEvent = "assessment_reassigned"
)

// NotificationModel adalah outbox sederhana untuk dispatcher.
// Delivery nyata (email/push) urusan worker lain; service ini hanya insert + log.
type NotificationModel struct {
	NotificationID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationEvent        NotificationEvent `gorm:"type:varchar(40);not null;column:notification_event" json:"notification_event"`
	NotificationAssessmentID uuid.UUID         `gorm:"type:uuid;not null;index;column:notification_assessment_id" json:"notification_assessment_id"`
	NotificationRecipientID  uuid.UUID         `gorm:"type:uuid;not null;index;column:notification_recipient_id" json:"notification_recipient_id"`
	NotificationMessage      string            `gorm:"type:text;not null;column:notification_message" json:"notification_message"`
	NotificationReadAt       *time.Time        `gorm:"type:timestamptz;column:notification_read_at" json:"notification_read_at,omitempty"`
	NotificationCreatedAt    time.Time         `gorm:"type:timestamptz;not null;default:now();column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "assessment_notifications" }
