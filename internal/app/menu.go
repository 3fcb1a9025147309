package app

import (
	"fmt"

	"github.com/ogusb/ogusb/internal/fsys"
)

// filesystemMenu returns the selectable filesystem entries for a device.
// The fifth entry auto-selects the capacity-based recommendation, the
// last goes back to device selection.
func filesystemMenu(recommended fsys.Filesystem) []string {
	return []string{
		"FAT32 (vfat) - Maximum compatibility, <4GB files",
		"exFAT - Large file support, modern systems",
		"NTFS - Windows optimized",
		"ext4 - Linux optimized",
		fmt.Sprintf("Auto-detect (Recommended: %s)", recommended.DisplayName()),
		"Back",
	}
}

// menuFilesystem maps a filesystem menu index to the filesystem to use.
// The second result is false for the back entry and anything out of
// range.
func menuFilesystem(idx int, recommended fsys.Filesystem) (fsys.Filesystem, bool) {
	switch idx {
	case 0:
		return fsys.VFAT, true
	case 1:
		return fsys.ExFAT, true
	case 2:
		return fsys.NTFS, true
	case 3:
		return fsys.Ext4, true
	case 4:
		return recommended, true
	}
	return "", false
}
