package controllers

import (
	"errors"
	"strconv"

	"github.com/ArrowAk07/Green-Chilli/pkg/resp"
	"github.com/ArrowAk07/Green-Chilli/services"
	"github.com/ArrowAk07/Green-Chilli/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	Svc  *services.ReviewService
	Auth *services.AuthService
}

func NewReviewController(svc *services.ReviewService, auth *services.AuthService) *ReviewController {
	return &ReviewController{Svc: svc, Auth: auth}
}

// POST /reviews (protected) — reviewer name comes from the logged-in user
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CreateReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := rc.Auth.GetProfile(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	rev, err := rc.Svc.Create(user.Name, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, rev)
}

// GET /menu/:id/reviews (public)
func (rc *ReviewController) ListForItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	out, err := rc.Svc.ListForItem(uint(id), limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reviews (public) — latest reviews across the menu
func (rc *ReviewController) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := rc.Svc.ListRecent(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
