package device

import (
	"path/filepath"

	"github.com/jaypipes/ghw"
)

// Details holds hardware identity for a disk, sourced from the host's
// sysfs/udev inventory. All fields are best-effort.
type Details struct {
	Vendor    string
	Serial    string
	WWN       string
	Removable bool
}

// Inspect looks up hardware details for the given device path. The
// result is informational only; any inventory error yields empty
// details rather than failing the session.
func Inspect(devicePath string) Details {
	block, err := ghw.Block()
	if err != nil {
		return Details{}
	}
	name := filepath.Base(devicePath)
	for _, disk := range block.Disks {
		if disk.Name == name {
			return Details{
				Vendor:    disk.Vendor,
				Serial:    disk.SerialNumber,
				WWN:       disk.WWN,
				Removable: disk.IsRemovable,
			}
		}
	}
	return Details{}
}
