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

type CartController struct {
	Carts   *services.CartStore
	Catalog *services.CatalogService
}

func NewCartController(carts *services.CartStore, catalog *services.CatalogService) *CartController {
	return &CartController{Carts: carts, Catalog: catalog}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	sess := h.Carts.Session(uid)
	resp.OK(c, gin.H{"lines": sess.Lines(), "totals": sess.ComputeTotals()})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Catalog.Get(body.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	sess := h.Carts.Session(uid)
	sess.Add(item)
	resp.Created(c, gin.H{"lines": sess.Lines(), "totals": sess.ComputeTotals()})
}

// DELETE /cart/items/:index
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "invalid index")
		return
	}

	sess := h.Carts.Session(uid)
	if err := sess.Remove(idx); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"lines": sess.Lines(), "totals": sess.ComputeTotals()})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	sess := h.Carts.Session(uid)
	if !sess.Clear() {
		resp.OK(c, gin.H{"cleared": false, "message": "cart is already empty"})
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
