package controllers

import (
	"strconv"

	"toeat/pkg/resp"
	"toeat/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Orders *services.OrderService
	Admin  *services.AdminService
}

func NewAdminController(orders *services.OrderService, admin *services.AdminService) *AdminController {
	return &AdminController{Orders: orders, Admin: admin}
}

// GET /admin/orders
func (ac *AdminController) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	orders, err := ac.Orders.ListAll(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type overrideStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
// Administrative override: no graph check, terminal states included.
func (ac *AdminController) OverrideStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req overrideStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ac.Orders.AdminOverrideStatus(id, req.Status)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

type resolveDisputeReq struct {
	Resolution string `json:"resolution" binding:"required,oneof=Resolved Refunded"`
}

// PATCH /admin/orders/:id/dispute
func (ac *AdminController) ResolveDispute(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req resolveDisputeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Orders.ResolveDispute(id, req.Resolution); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"disputeStatus": req.Resolution})
}

// GET /admin/users
func (ac *AdminController) Users(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	users, err := ac.Admin.ListUsers(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// PATCH /admin/users/:id/status
func (ac *AdminController) ToggleUserStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := ac.Admin.ToggleUserStatus(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, user)
}

// GET /admin/users/:id/transactions
func (ac *AdminController) UserTransactions(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	txs, err := ac.Admin.UserTransactions(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, txs)
}
