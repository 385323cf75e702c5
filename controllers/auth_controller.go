package controllers

import (
	"campusfood/pkg/resp"
	"campusfood/services"
	"campusfood/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /api/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "User registered", "user": user})
}

// POST /api/verify-email
func (a *AuthController) VerifyEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.VerifyEmail(req.Email, req.Code); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Email verified"})
}

// POST /api/login
func (a *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "Invalid credentials")
		return
	}
	resp.OK(c, gin.H{"message": "Login successful", "token": token, "user": user})
}

// POST /api/complete-profile, PUT /api/profile
func (a *AuthController) CompleteProfile(c *gin.Context) {
	var req services.CompleteProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.CompleteProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}

// GET /api/profile
func (a *AuthController) Profile(c *gin.Context) {
	user, vendor, err := a.Svc.GetProfileWithVendor(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := gin.H{"user": user}
	if vendor != nil {
		out["vendor"] = vendor
		out["vendor_id"] = vendor.ID
	}
	resp.OK(c, out)
}
