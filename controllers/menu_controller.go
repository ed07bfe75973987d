package controllers

import (
	"errors"
	"strconv"

	"github.com/ArrowAk07/Green-Chilli/pkg/resp"
	"github.com/ArrowAk07/Green-Chilli/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(svc *services.CatalogService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.LoadMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /offers
func (h *MenuController) Offers(c *gin.Context) {
	items, err := h.Svc.SpecialOffers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu (admin)
func (h *MenuController) Create(c *gin.Context) {
	var req services.CreateItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/:id (admin)
func (h *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.UpdateItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Update(uint(id), &req)
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
	resp.OK(c, item)
}

// DELETE /menu/:id (admin)
func (h *MenuController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
