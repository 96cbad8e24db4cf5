package constants

// Role names carried in JWT claims and checked by the auth middleware.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"

	// RoleAny allows any authenticated account regardless of role.
	RoleAny = "any"
)
