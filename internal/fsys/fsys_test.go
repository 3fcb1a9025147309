package fsys_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ogusb/ogusb/internal/fsys"
)

var _ = Describe("Recommend", func() {
	It("recommends FAT32 for small drives", func() {
		Expect(fsys.Recommend(1.0)).To(Equal(fsys.VFAT))
		Expect(fsys.Recommend(3.7)).To(Equal(fsys.VFAT))
	})

	It("recommends FAT32 at exactly 4GB", func() {
		Expect(fsys.Recommend(4.0)).To(Equal(fsys.VFAT))
	})

	It("recommends FAT32 for medium drives", func() {
		Expect(fsys.Recommend(8.0)).To(Equal(fsys.VFAT))
		Expect(fsys.Recommend(16.0)).To(Equal(fsys.VFAT))
	})

	It("recommends FAT32 at exactly 32GB", func() {
		Expect(fsys.Recommend(32.0)).To(Equal(fsys.VFAT))
	})

	It("recommends exFAT just above 32GB", func() {
		Expect(fsys.Recommend(32.01)).To(Equal(fsys.ExFAT))
	})

	It("recommends exFAT for large drives", func() {
		Expect(fsys.Recommend(64.0)).To(Equal(fsys.ExFAT))
		Expect(fsys.Recommend(512.0)).To(Equal(fsys.ExFAT))
	})
})

var _ = Describe("DisplayName", func() {
	It("maps mkfs tags to human-readable names", func() {
		Expect(fsys.VFAT.DisplayName()).To(Equal("FAT32"))
		Expect(fsys.ExFAT.DisplayName()).To(Equal("exFAT"))
		Expect(fsys.NTFS.DisplayName()).To(Equal("NTFS"))
		Expect(fsys.Ext4.DisplayName()).To(Equal("ext4"))
	})

	It("upper-cases unknown tags", func() {
		Expect(fsys.Filesystem("btrfs").DisplayName()).To(Equal("BTRFS"))
	})
})

var _ = Describe("Supported", func() {
	It("accepts the closed enumeration", func() {
		for _, f := range fsys.All() {
			Expect(f.Supported()).To(BeTrue(), string(f))
		}
	})

	It("rejects anything else", func() {
		Expect(fsys.Filesystem("btrfs").Supported()).To(BeFalse())
		Expect(fsys.Filesystem("").Supported()).To(BeFalse())
	})
})

var _ = Describe("MkfsCommand", func() {
	It("builds the FAT32 command", func() {
		name, args, err := fsys.VFAT.MkfsCommand("/dev/sdb1", "OG_USB")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal("mkfs.vfat"))
		Expect(args).To(Equal([]string{"-F", "32", "-n", "OG_USB", "/dev/sdb1"}))
	})

	It("builds the exFAT command", func() {
		name, args, err := fsys.ExFAT.MkfsCommand("/dev/sdb1", "BACKUP")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal("mkfs.exfat"))
		Expect(args).To(Equal([]string{"-n", "BACKUP", "/dev/sdb1"}))
	})

	It("builds the NTFS command", func() {
		name, args, err := fsys.NTFS.MkfsCommand("/dev/sdb1", "WIN")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal("mkfs.ntfs"))
		Expect(args).To(Equal([]string{"-f", "-L", "WIN", "/dev/sdb1"}))
	})

	It("builds the ext4 command", func() {
		name, args, err := fsys.Ext4.MkfsCommand("/dev/nvme0n1p1", "DATA")
		Expect(err).NotTo(HaveOccurred())
		Expect(name).To(Equal("mkfs.ext4"))
		Expect(args).To(Equal([]string{"-F", "-L", "DATA", "/dev/nvme0n1p1"}))
	})

	It("rejects unsupported filesystem tags", func() {
		_, _, err := fsys.Filesystem("btrfs").MkfsCommand("/dev/sdb1", "X")
		Expect(err).To(MatchError(ContainSubstring("unsupported filesystem type")))
	})
})
