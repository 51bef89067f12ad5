// file: internals/features/competency/assessments/controller/notification_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "kompetensiku_backend/internals/features/competency/assessments/model"
	helper "kompetensiku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /notifications — outbox milik user login
func (ctl *NotificationController) ListMine(c *fiber.Ctx) error {
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 25, 100)

	var rows []model.NotificationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("notification_recipient_id = ?", actorID).
		Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// POST /notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now().UTC()
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_recipient_id = ?", id, actorID).
		Update("notification_read_at", now)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.Success(c, "Notifikasi dibaca", fiber.Map{"notification_id": id, "read_at": now})
}
