package controllers

import (
	"fmt"
	"strconv"

	"toeat/entity"
	"toeat/pkg/resp"
	"toeat/services"
	"toeat/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	Wallet *services.WalletService
}

func NewOrderController(orders *services.OrderService, wallet *services.WalletService) *OrderController {
	return &OrderController{Orders: orders, Wallet: wallet}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}

// POST /orders
// Checkout: for wallet payment the debit runs first; when it fails the
// order is never created and the caller is told to pick another method.
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.PaymentMethod == entity.PaymentWallet {
		total := req.Quote()
		ok, err := oc.Wallet.Debit(uid, total, fmt.Sprintf("Order payment (%d items)", len(req.Items)))
		if err != nil {
			writeErr(c, err)
			return
		}
		if !ok {
			resp.PaymentRequired(c, "insufficient funds, choose another payment method")
			return
		}
	}

	order, err := oc.Orders.Create(uid, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := oc.Orders.Detail(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	if order.UserID != utils.CurrentUserID(c) && utils.CurrentRole(c) != entity.RoleAdmin {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, order)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := oc.Orders.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type disputeReq struct {
	Reason string `json:"reason" binding:"required"`
}

// POST /orders/:id/dispute
func (oc *OrderController) FileDispute(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req disputeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Detail(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	if order.UserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "forbidden")
		return
	}

	if err := oc.Orders.FileDispute(id, req.Reason); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"disputeStatus": entity.DisputeOpen})
}
