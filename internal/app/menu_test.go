package app

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ogusb/ogusb/internal/fsys"
)

var _ = Describe("filesystemMenu", func() {
	It("offers the four filesystems, auto-detect and back", func() {
		menu := filesystemMenu(fsys.VFAT)
		Expect(menu).To(HaveLen(6))
		Expect(menu[0]).To(ContainSubstring("FAT32"))
		Expect(menu[1]).To(ContainSubstring("exFAT"))
		Expect(menu[2]).To(ContainSubstring("NTFS"))
		Expect(menu[3]).To(ContainSubstring("ext4"))
		Expect(menu[5]).To(Equal("Back"))
	})

	It("shows the recommendation inline on the auto-detect entry", func() {
		Expect(filesystemMenu(fsys.ExFAT)[4]).To(ContainSubstring("Recommended: exFAT"))
		Expect(filesystemMenu(fsys.VFAT)[4]).To(ContainSubstring("Recommended: FAT32"))
	})
})

var _ = Describe("menuFilesystem", func() {
	It("maps explicit entries to their filesystem", func() {
		for idx, want := range []fsys.Filesystem{fsys.VFAT, fsys.ExFAT, fsys.NTFS, fsys.Ext4} {
			fs, ok := menuFilesystem(idx, fsys.ExFAT)
			Expect(ok).To(BeTrue())
			Expect(fs).To(Equal(want))
		}
	})

	It("maps the auto-detect entry to the recommendation", func() {
		fs, ok := menuFilesystem(4, fsys.ExFAT)
		Expect(ok).To(BeTrue())
		Expect(fs).To(Equal(fsys.ExFAT))
	})

	It("treats the back entry and out-of-range indexes as no selection", func() {
		_, ok := menuFilesystem(5, fsys.VFAT)
		Expect(ok).To(BeFalse())
		_, ok = menuFilesystem(42, fsys.VFAT)
		Expect(ok).To(BeFalse())
	})
})
