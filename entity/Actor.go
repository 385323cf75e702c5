package entity

// Actor is an authenticated principal acting on orders. VendorID is set only
// when Role is RoleVendor.
type Actor struct {
	UserID   uint
	Role     Role
	VendorID uint
}

// Owns reports whether the actor is allowed to touch the given order at all.
// Transition permission is checked separately against the transition table.
func (a Actor) Owns(o *Order) bool {
	switch a.Role {
	case RoleCustomer:
		return o.CustomerID == a.UserID
	case RoleVendor:
		return a.VendorID != 0 && o.VendorID == a.VendorID
	default:
		return false
	}
}
