// file: internals/features/competency/assessments/service/notification_dispatcher.go
package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
)

/* ==============================
   Collaborator: NotificationDispatcher
   Best-effort: tidak pernah melempar error ke pemanggil,
   tidak pernah ikut/ membatalkan transaksi workflow.
============================== */

type NotificationDispatcher interface {
	Dispatch(event model.NotificationEvent, a *model.AssessmentModel, recipients []uuid.UUID)
}

// DBNotificationDispatcher menulis outbox row per recipient + log.
// Delivery nyata (email/push) dikerjakan worker terpisah di luar repo ini.
type DBNotificationDispatcher struct {
	DB *gorm.DB
}

func NewDBNotificationDispatcher(db *gorm.DB) *DBNotificationDispatcher {
	return &DBNotificationDispatcher{DB: db}
}

func (d *DBNotificationDispatcher) Dispatch(event model.NotificationEvent, a *model.AssessmentModel, recipients []uuid.UUID) {
	if a == nil || len(recipients) == 0 {
		return
	}
	msg := messageFor(event, a)
	for _, rid := range recipients {
		if rid == uuid.Nil {
			continue
		}
		row := model.NotificationModel{
			NotificationEvent:        event,
			NotificationAssessmentID: a.AssessmentID,
			NotificationRecipientID:  rid,
			NotificationMessage:      msg,
		}
		if err := d.DB.Create(&row).Error; err != nil {
			// sengaja ditelan: notifikasi tidak boleh menggagalkan transisi
			log.Printf("[NotificationDispatcher] ERROR insert %s for recipient=%s: %v", event, rid, err)
			continue
		}
	}
	log.Printf("[NotificationDispatcher] %s assessment=%s recipients=%d", event, a.AssessmentID, len(recipients))
}

func messageFor(event model.NotificationEvent, a *model.AssessmentModel) string {
	switch event {
	case model.NotificationEventSubmitted:
		return fmt.Sprintf("Assessment %s telah disubmit dan menunggu approval", a.AssessmentID)
	case model.NotificationEventApproved:
		return fmt.Sprintf("Assessment %s sudah di-approve", a.AssessmentID)
	case model.NotificationEventRejected:
		reason := ""
		if a.AssessmentRejectionReason != nil {
			reason = ": " + *a.AssessmentRejectionReason
		}
		return fmt.Sprintf("Assessment %s ditolak%s", a.AssessmentID, reason)
	case model.NotificationEventReassigned:
		return fmt.Sprintf("Assessor untuk assessment %s berubah", a.AssessmentID)
	default:
		return fmt.Sprintf("Update pada assessment %s", a.AssessmentID)
	}
}
