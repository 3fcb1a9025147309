//go:build windows
// +build windows

package platform

type windowsPrivilege struct{}

func newPrivilege() Privilege {
	return windowsPrivilege{}
}

// Elevated always reports true on Windows; there is no euid to check
// and the external utilities fail on their own without admin rights.
func (windowsPrivilege) Elevated() bool {
	return true
}
