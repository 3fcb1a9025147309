package platform

import (
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// MountedPartitions returns the mounted partition device paths belonging
// to the given parent device, e.g. /dev/sdb1 and /dev/sdb2 for /dev/sdb.
func MountedPartitions(devicePath string) ([]string, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	var mounted []string
	for _, p := range partitions {
		if p.Device != devicePath && strings.HasPrefix(p.Device, devicePath) {
			mounted = append(mounted, p.Device)
		}
	}
	return mounted, nil
}
