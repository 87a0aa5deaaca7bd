// controllers/review_controller.go
package controllers

import (
	"toeat/entity"
	"toeat/pkg/resp"
	"toeat/services"
	"toeat/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
	Auth    *services.AuthService
}

func NewReviewController(reviews *services.ReviewService, auth *services.AuthService) *ReviewController {
	return &ReviewController{Reviews: reviews, Auth: auth}
}

type createReviewReq struct {
	TargetID string `json:"targetId" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// POST /reviews (Protected)
func (rc *ReviewController) Create(c *gin.Context) {
	var req createReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := rc.Auth.Profile(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}

	review := &entity.Review{
		TargetID:   req.TargetID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		UserID:     user.ID,
		AuthorName: user.Name,
		AuthorPic:  user.Avatar,
	}
	summary, err := rc.Reviews.Add(review)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, gin.H{"review": review, "aggregate": summary})
}

// GET /reviews?targetId=
func (rc *ReviewController) ListForTarget(c *gin.Context) {
	targetID := c.Query("targetId")
	if targetID == "" {
		resp.BadRequest(c, "targetId is required")
		return
	}
	items, err := rc.Reviews.ListForTarget(targetID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	summary, err := rc.Reviews.Recompute(targetID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "aggregate": summary})
}
