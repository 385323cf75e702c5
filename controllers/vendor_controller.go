package controllers

import (
	"strconv"

	"campusfood/pkg/resp"
	"campusfood/services"

	"github.com/gin-gonic/gin"
)

type VendorController struct{ Svc *services.VendorService }

func NewVendorController(s *services.VendorService) *VendorController {
	return &VendorController{Svc: s}
}

// GET /api/customer/vendors
func (h *VendorController) List(c *gin.Context) {
	vendors, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"vendors": vendors})
}

// GET /api/vendors/:vendorId
func (h *VendorController) Detail(c *gin.Context) {
	vendorID, err := strconv.ParseUint(c.Param("vendorId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid vendor id")
		return
	}
	vendor, err := h.Svc.Detail(uint(vendorID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"vendor": vendor})
}

// GET /api/customer/vendors/:vendorId/menu
func (h *VendorController) Menu(c *gin.Context) {
	vendorID, err := strconv.ParseUint(c.Param("vendorId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid vendor id")
		return
	}
	vendor, menu, err := h.Svc.MenuForCustomer(uint(vendorID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"vendor": vendor, "menu": menu})
}
