package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ArrowAk07/Green-Chilli/entity"
	"github.com/ArrowAk07/Green-Chilli/pkg/resp"
	"github.com/ArrowAk07/Green-Chilli/services"
	"github.com/ArrowAk07/Green-Chilli/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CheckoutController struct {
	Carts *services.CartStore
	Svc   *services.CheckoutService
	Auth  *services.AuthService
}

func NewCheckoutController(carts *services.CartStore, svc *services.CheckoutService, auth *services.AuthService) *CheckoutController {
	return &CheckoutController{Carts: carts, Svc: svc, Auth: auth}
}

type checkoutReq struct {
	CustomerName string `json:"customerName"`
}

func (h *CheckoutController) customerName(c *gin.Context, uid uint, req *checkoutReq) string {
	if name := strings.TrimSpace(req.CustomerName); name != "" {
		return name
	}
	if u, err := h.Auth.GetProfile(uid); err == nil {
		return u.Name
	}
	return "Guest"
}

// POST /checkout/preview
// Awaiting-confirmation step: renders the receipt from the live cart without
// persisting anything. Cancelling is just not calling confirm.
func (h *CheckoutController) Preview(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req checkoutReq
	_ = c.ShouldBindJSON(&req) // body optional

	sess := h.Carts.Session(uid)
	if sess.Len() == 0 {
		resp.BadRequest(c, services.ErrEmptyCart.Error())
		return
	}

	totals := sess.ComputeTotals()
	order := entity.Order{
		OrderDate: time.Now(),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
	}
	items := make([]entity.OrderItem, 0, sess.Len())
	for _, ln := range sess.Lines() {
		items = append(items, entity.OrderItem{
			FoodItemID: ln.ItemID, ItemName: ln.Name, ItemPrice: ln.UnitPrice,
		})
	}

	resp.OK(c, gin.H{
		"totals":  totals,
		"receipt": services.RenderReceipt(&order, items, h.customerName(c, uid, &req)),
	})
}

// POST /checkout/confirm
// Runs the atomic commit: order header + all lines in one transaction, then
// clears the cart and reports the simulated payment result.
func (h *CheckoutController) Confirm(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req checkoutReq
	_ = c.ShouldBindJSON(&req) // body optional

	sess := h.Carts.Session(uid)
	order, items, err := h.Svc.Checkout(sess)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrItemNotFound):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	// committed; cart resets, failure above leaves it untouched for retry
	sess.Clear()

	resp.Created(c, gin.H{
		"orderId": order.ID,
		"totals":  gin.H{"subtotal": order.Subtotal, "tax": order.Tax, "total": order.Total},
		"receipt": services.RenderReceipt(order, items, h.customerName(c, uid, &req)),
		"payment": fmt.Sprintf("Payment Successful! ₹%.2f has been charged.", order.Total),
	})
}

// GET /orders/:id
func (h *CheckoutController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, items, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"order": order, "items": items})
}
