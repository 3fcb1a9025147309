package shell_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ogusb/ogusb/internal/shell"
)

var _ = Describe("ToolMissingError", func() {
	It("names the missing tool", func() {
		err := &shell.ToolMissingError{Tool: "mkfs.exfat"}
		Expect(err.Error()).To(Equal(`required tool "mkfs.exfat" not found in PATH`))
	})
})

var _ = Describe("CommandError", func() {
	It("carries the utility's own diagnostic", func() {
		err := &shell.CommandError{
			Name:   "parted",
			Args:   []string{"-s", "/dev/sdb", "mklabel", "gpt"},
			Output: "Error: Partition(s) on /dev/sdb are being used.",
			Err:    errors.New("exit status 1"),
		}
		Expect(err.Error()).To(ContainSubstring("parted -s /dev/sdb mklabel gpt"))
		Expect(err.Error()).To(ContainSubstring("being used"))
	})

	It("unwraps to the exit error", func() {
		cause := errors.New("exit status 1")
		err := &shell.CommandError{Name: "dd", Err: cause}
		Expect(errors.Is(err, cause)).To(BeTrue())
	})
})

var _ = Describe("ExecRunner", func() {
	It("reports missing binaries as tool-missing errors", func() {
		runner := shell.NewExecRunner()
		err := runner.LookPath("definitely-not-a-real-tool-9f3a")
		var missing *shell.ToolMissingError
		Expect(errors.As(err, &missing)).To(BeTrue())
		Expect(missing.Tool).To(Equal("definitely-not-a-real-tool-9f3a"))
	})
})
