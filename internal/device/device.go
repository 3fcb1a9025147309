package device

import (
	"fmt"
	"strconv"
)

// Device is a USB storage device as reported by the block device
// inventory. The set of known devices is rebuilt from scratch on every
// detection pass; there is no identity tracking across rescans.
type Device struct {
	Path      string
	SizeBytes uint64
	Model     string
}

// SizeGB converts the device capacity to gigabytes.
func (d Device) SizeGB() float64 {
	return float64(d.SizeBytes) / (1 << 30)
}

func (d Device) String() string {
	return fmt.Sprintf("%s - %.2fGB - %s", d.Path, d.SizeGB(), d.Model)
}

// PartitionPath returns the device path of the nth partition. Devices
// whose path ends in a digit get a "p" separator, per the kernel's
// partition naming convention (/dev/nvme0n1 -> /dev/nvme0n1p1).
func PartitionPath(devicePath string, n int) string {
	p := devicePath
	if len(p) > 0 && p[len(p)-1] >= '0' && p[len(p)-1] <= '9' {
		p += "p"
	}
	return p + strconv.Itoa(n)
}
