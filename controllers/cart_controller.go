package controllers

import (
	"strconv"

	"campusfood/pkg/resp"
	"campusfood/services"
	"campusfood/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc      *services.CartService
	OrderSvc *services.OrderService
}

func NewCartController(s *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Svc: s, OrderSvc: orders}
}

// GET /api/customer/cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": view})
}

// POST /api/customer/cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "added"})
}

// PATCH /api/customer/cart/items/:itemId
func (h *CartController) AdjustQuantity(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AdjustQuantity(utils.CurrentUserID(c), uint(itemID), req.Delta); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "updated"})
}

// DELETE /api/customer/cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "removed"})
}

// DELETE /api/customer/cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cleared"})
}

// POST /api/customer/cart/checkout
// The submission pipeline leaves the cart intact; it is cleared here, and
// only once the order is in, so a failed submit keeps the selections.
func (h *CartController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	userID := utils.CurrentUserID(c)

	order, err := h.OrderSvc.Checkout(userID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := h.Svc.Clear(userID); err != nil {
		// The order exists; a stale cart is an inconvenience, not a failure.
		resp.Created(c, gin.H{"order": order, "warning": "cart could not be cleared"})
		return
	}
	resp.Created(c, gin.H{"order": order})
}
