package device

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ogusb/ogusb/internal/shell"
)

type lsblkOutput struct {
	BlockDevices []lsblkDevice `json:"blockdevices"`
}

type lsblkDevice struct {
	Name  string `json:"name"`
	Size  uint64 `json:"size"`
	Tran  string `json:"tran"`
	Model string `json:"model"`
}

// Detector discovers USB storage devices through the host's block
// device inventory.
type Detector struct {
	runner shell.Runner
}

func NewDetector(runner shell.Runner) *Detector {
	return &Detector{runner: runner}
}

// Detect returns the block devices whose transport is usb, in inventory
// order. A failed lsblk invocation is not fatal to the session; the
// caller gets an empty list and the error, and may rescan.
func (d *Detector) Detect(ctx context.Context) ([]Device, error) {
	out, err := d.runner.Run(ctx, "lsblk", "-J", "-b", "-d", "-o", "NAME,SIZE,TRAN,MODEL")
	if err != nil {
		return nil, fmt.Errorf("detecting USB devices: %w", err)
	}

	var raw lsblkOutput
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("parsing lsblk output: %w", err)
	}

	var devices []Device
	for _, dev := range raw.BlockDevices {
		if dev.Tran != "usb" {
			continue
		}
		devices = append(devices, Device{
			Path:      "/dev/" + dev.Name,
			SizeBytes: dev.Size,
			Model:     dev.Model,
		})
	}
	return devices, nil
}
