package controllers

import (
	"toeat/pkg/resp"
	"toeat/services"
	"toeat/utils"

	"github.com/gin-gonic/gin"
)

type WalletController struct {
	Wallet *services.WalletService
}

func NewWalletController(wallet *services.WalletService) *WalletController {
	return &WalletController{Wallet: wallet}
}

// GET /wallet
func (wc *WalletController) View(c *gin.Context) {
	view, err := wc.Wallet.View(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, view)
}

type topUpReq struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// POST /wallet/topup
// Amount is in cents.
func (wc *WalletController) TopUp(c *gin.Context) {
	var req topUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	uid := utils.CurrentUserID(c)
	if err := wc.Wallet.TopUp(uid, req.Amount); err != nil {
		writeErr(c, err)
		return
	}
	view, err := wc.Wallet.View(uid)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, view)
}
