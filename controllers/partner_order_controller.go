package controllers

import (
	"strconv"

	"toeat/entity"
	"toeat/pkg/resp"
	"toeat/repository"
	"toeat/services"
	"toeat/utils"

	"github.com/gin-gonic/gin"
)

// PartnerOrderController is the restaurant-side order surface. Every
// action verifies ownership inside the service before moving the order.
type PartnerOrderController struct {
	Orders   *services.OrderService
	RestRepo *repository.RestaurantRepository
}

func NewPartnerOrderController(orders *services.OrderService, restRepo *repository.RestaurantRepository) *PartnerOrderController {
	return &PartnerOrderController{Orders: orders, RestRepo: restRepo}
}

// GET /partner/orders
func (pc *PartnerOrderController) List(c *gin.Context) {
	rest, err := pc.RestRepo.FindByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "no restaurant for this account")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := pc.Orders.ListForRestaurant(rest.ID, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (pc *PartnerOrderController) action(c *gin.Context, fn func(partnerID, orderID uint) (*entity.Order, error)) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := fn(utils.CurrentUserID(c), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /partner/orders/:id/confirm
func (pc *PartnerOrderController) Confirm(c *gin.Context) {
	pc.action(c, pc.Orders.PartnerConfirm)
}

// PATCH /partner/orders/:id/prepare
func (pc *PartnerOrderController) StartPreparing(c *gin.Context) {
	pc.action(c, pc.Orders.PartnerStartPreparing)
}

// PATCH /partner/orders/:id/assign-rider
func (pc *PartnerOrderController) AssignRider(c *gin.Context) {
	pc.action(c, pc.Orders.PartnerAssignRider)
}

// PATCH /partner/orders/:id/reject
func (pc *PartnerOrderController) Reject(c *gin.Context) {
	pc.action(c, pc.Orders.PartnerReject)
}
