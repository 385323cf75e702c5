package controllers

import (
	"strconv"
	"time"

	"campusfood/entity"
	"campusfood/pkg/resp"
	"campusfood/services"
	"campusfood/utils"

	"github.com/gin-gonic/gin"
)

type VendorOrderController struct{ Svc *services.OrderService }

func NewVendorOrderController(s *services.OrderService) *VendorOrderController {
	return &VendorOrderController{Svc: s}
}

func vendorIDParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("vendorId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid vendor id")
		return 0, false
	}
	return uint(v), true
}

// GET /api/vendors/:vendorId/orders?status=&limit=
func (h *VendorOrderController) List(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	var status *entity.Status
	if s := c.Query("status"); s != "" {
		st := entity.Status(s)
		status = &st
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := h.Svc.ListForVendor(utils.CurrentActor(c), vendorID, status, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/vendors/:vendorId/orders/:orderId
func (h *VendorOrderController) Detail(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.DetailForVendor(utils.CurrentActor(c), vendorID, uint(orderID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PUT /api/vendors/:vendorId/orders/:orderId/status
func (h *VendorOrderController) UpdateStatus(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status           entity.Status `json:"status" binding:"required"`
		EstimatedReadyAt string        `json:"estimated_ready_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var estimatedReadyAt *time.Time
	if req.EstimatedReadyAt != "" {
		ts, err := time.Parse(time.RFC3339, req.EstimatedReadyAt)
		if err != nil {
			resp.BadRequest(c, "invalid estimated_ready_at")
			return
		}
		estimatedReadyAt = &ts
	}

	actor := utils.CurrentActor(c)
	if actor.VendorID != vendorID {
		resp.Forbidden(c, "forbidden")
		return
	}

	order, err := h.Svc.SetStatus(actor, uint(orderID), req.Status, estimatedReadyAt)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order status updated successfully", "order": order})
}

// GET /api/vendors/:vendorId/stats
func (h *VendorOrderController) Stats(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}
	stats, err := h.Svc.StatsForVendor(utils.CurrentActor(c), vendorID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}
