package domain

// Principal is the identity resolved from a bearer token for one request.
type Principal struct {
	ID   uint
	Role Role
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// CanAccess reports whether p may act on a resource owned by ownerID.
func (p Principal) CanAccess(ownerID uint) bool {
	return p.IsAdmin() || (p.ID != 0 && p.ID == ownerID)
}
