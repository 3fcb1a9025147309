package platform

// Privilege reports whether the process has enough rights to write to
// raw block devices. Queried once at startup, before any device access.
type Privilege interface {
	Elevated() bool
}

// NewPrivilege returns the platform-specific privilege check.
func NewPrivilege() Privilege {
	return newPrivilege()
}
