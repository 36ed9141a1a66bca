package domain

// Identity is the resolved caller produced by the access gate. It is passed
// explicitly into every manager operation; nothing reads it from ambient
// state.
type Identity struct {
	UserID string
	Email  string
	Role   StaffRole
}

// Actor couples an identity with the originating network address for audit
// correlation.
type Actor struct {
	Identity
	IP *string
}
