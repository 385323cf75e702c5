package utils

import (
	"campusfood/entity"

	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
		if s, ok := v.(string); ok {
			return entity.Role(s)
		}
	}
	return ""
}

// CurrentVendorID is the vendor profile id resolved by the auth middleware
// for vendor tokens; 0 for customers.
func CurrentVendorID(c *gin.Context) uint {
	v, _ := c.Get("vendorId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

// CurrentActor bundles the request identity for capability checks.
func CurrentActor(c *gin.Context) entity.Actor {
	return entity.Actor{
		UserID:   CurrentUserID(c),
		Role:     CurrentRole(c),
		VendorID: CurrentVendorID(c),
	}
}
