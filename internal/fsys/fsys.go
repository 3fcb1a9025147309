package fsys

import (
	"fmt"
	"strings"
)

// Filesystem is a formattable filesystem, identified by its mkfs tag.
type Filesystem string

const (
	VFAT  Filesystem = "vfat"
	ExFAT Filesystem = "exfat"
	NTFS  Filesystem = "ntfs"
	Ext4  Filesystem = "ext4"
)

// All lists the selectable filesystems in menu order.
func All() []Filesystem {
	return []Filesystem{VFAT, ExFAT, NTFS, Ext4}
}

func (f Filesystem) Supported() bool {
	switch f {
	case VFAT, ExFAT, NTFS, Ext4:
		return true
	}
	return false
}

// DisplayName returns the human-readable filesystem name.
func (f Filesystem) DisplayName() string {
	switch f {
	case VFAT:
		return "FAT32"
	case ExFAT:
		return "exFAT"
	case NTFS:
		return "NTFS"
	case Ext4:
		return "ext4"
	}
	return strings.ToUpper(string(f))
}

// Recommend picks a filesystem for a device of the given capacity in GB.
// Drives up to 32GB get FAT32 for maximum compatibility, larger drives
// get exFAT so single files over 4GB can be stored. Both lower branches
// are inclusive of their boundary.
func Recommend(sizeGB float64) Filesystem {
	if sizeGB <= 4 {
		return VFAT
	}
	if sizeGB <= 32 {
		return VFAT
	}
	return ExFAT
}

// MkfsCommand returns the mkfs binary and arguments that format the
// partition with the given volume label.
func (f Filesystem) MkfsCommand(partition, label string) (string, []string, error) {
	switch f {
	case VFAT:
		return "mkfs.vfat", []string{"-F", "32", "-n", label, partition}, nil
	case ExFAT:
		return "mkfs.exfat", []string{"-n", label, partition}, nil
	case NTFS:
		return "mkfs.ntfs", []string{"-f", "-L", label, partition}, nil
	case Ext4:
		return "mkfs.ext4", []string{"-F", "-L", label, partition}, nil
	}
	return "", nil, fmt.Errorf("unsupported filesystem type: %s", f)
}
