package controllers

import (
	"errors"

	"toeat/pkg/resp"
	"toeat/services"

	"github.com/gin-gonic/gin"
)

// writeErr maps service errors onto the response envelope so every
// controller reports them the same way.
func writeErr(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found, it may have been a stale link")
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRestaurantNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	default:
		resp.ServerError(c, err)
	}
}
