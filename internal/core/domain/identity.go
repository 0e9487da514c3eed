package domain

// Identity is the authenticated caller as recovered from a verified
// token. It is trusted as-is for the token's lifetime: role changes in
// the credential store only take effect once the holder logs in again
// and receives a fresh token.
type Identity struct {
	ID    string
	Email string
	Role  string
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// IsSelf reports whether the caller owns the target account.
func (i Identity) IsSelf(targetID string) bool { return i.ID != "" && i.ID == targetID }

// SelfOrAdmin permits an action on the target account by its owner or
// by any admin.
func (i Identity) SelfOrAdmin(targetID string) bool { return i.IsSelf(targetID) || i.IsAdmin() }
