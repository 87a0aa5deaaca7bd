package controllers

import (
	"toeat/pkg/resp"
	"toeat/services"
	"toeat/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifs *services.NotificationService
}

func NewNotificationController(notifs *services.NotificationService) *NotificationController {
	return &NotificationController{Notifs: notifs}
}

// GET /notifications
func (nc *NotificationController) List(c *gin.Context) {
	items, err := nc.Notifs.ListFor(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	unread, err := nc.Notifs.UnreadCount(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "unread": unread})
}

// POST /notifications/read
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	if err := nc.Notifs.MarkAllReadFor(utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"read": true})
}
