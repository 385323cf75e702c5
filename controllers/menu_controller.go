package controllers

import (
	"strconv"

	"campusfood/pkg/resp"
	"campusfood/services"
	"campusfood/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// POST /api/vendors/:vendorId/menu
func (h *MenuController) CreateMenu(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}
	var req services.CreateMenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.CreateMenu(utils.CurrentUserID(c), vendorID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"menu": menu})
}

// POST /api/vendors/:vendorId/menu/:menuId/items
func (h *MenuController) AddItem(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}
	menuID, err := strconv.ParseUint(c.Param("menuId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.AddItem(utils.CurrentUserID(c), vendorID, uint(menuID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"item": item})
}

// PUT /api/vendors/:vendorId/menu/:menuId/items/:itemId
func (h *MenuController) UpdateItem(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req services.UpdateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateItem(utils.CurrentUserID(c), vendorID, uint(itemID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// DELETE /api/vendors/:vendorId/menu/:menuId/items/:itemId
func (h *MenuController) DeleteItem(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.DeleteItem(utils.CurrentUserID(c), vendorID, uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}
