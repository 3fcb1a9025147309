//go:build !windows
// +build !windows

package platform

import "os"

type unixPrivilege struct{}

func newPrivilege() Privilege {
	return unixPrivilege{}
}

func (unixPrivilege) Elevated() bool {
	return os.Geteuid() == 0
}
