package controllers

import (
	"strconv"

	"campusfood/pkg/resp"
	"campusfood/repository"
	"campusfood/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{ Repo *repository.NotificationRepository }

func NewNotificationController(r *repository.NotificationRepository) *NotificationController {
	return &NotificationController{Repo: r}
}

// GET /api/notifications
func (h *NotificationController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Repo.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"notifications": items})
}

// PATCH /api/notifications/:id/read
func (h *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid notification id")
		return
	}
	affected, err := h.Repo.MarkRead(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "not found")
		return
	}
	resp.OK(c, gin.H{"message": "read"})
}
