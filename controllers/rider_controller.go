package controllers

import (
	"strconv"

	"toeat/pkg/resp"
	"toeat/services"

	"github.com/gin-gonic/gin"
)

type RiderController struct {
	Orders *services.OrderService
}

func NewRiderController(orders *services.OrderService) *RiderController {
	return &RiderController{Orders: orders}
}

// GET /rider/jobs
func (rc *RiderController) Jobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	jobs, err := rc.Orders.RiderJobs(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, jobs)
}

// PATCH /rider/jobs/:id/pickup
func (rc *RiderController) PickUp(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := rc.Orders.RiderPickUp(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /rider/jobs/:id/complete
func (rc *RiderController) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := rc.Orders.RiderComplete(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}
