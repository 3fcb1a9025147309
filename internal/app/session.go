package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"

	"github.com/ogusb/ogusb/internal/device"
	"github.com/ogusb/ogusb/internal/fsys"
	"github.com/ogusb/ogusb/internal/pipeline"
	"github.com/ogusb/ogusb/internal/shell"
)

// DefaultLabel is applied when the operator leaves the volume label blank.
const DefaultLabel = "OG_USB"

type deviceChoice int

const (
	choiceDevice deviceChoice = iota
	choiceRescan
	choiceQuit
)

// Session drives the interactive formatting loop. Selections are held
// only for one loop iteration and discarded after each format attempt
// or cancellation.
type Session struct {
	Detector *device.Detector
	Pipeline *pipeline.Pipeline
	Log      logrus.FieldLogger
}

func NewSession(runner shell.Runner, log logrus.FieldLogger) *Session {
	p := pipeline.New(runner, log)
	p.Confirm = confirmErase
	return &Session{
		Detector: device.NewDetector(runner),
		Pipeline: p,
		Log:      log,
	}
}

// Run loops: detect -> select device -> select filesystem -> label ->
// pipeline -> continue? until the operator quits.
func (s *Session) Run(ctx context.Context) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("   OG USB - USB Formatting & Partitioning Tool")
	fmt.Println(strings.Repeat("=", 60))

	for {
		devices, err := s.Detector.Detect(ctx)
		if err != nil {
			s.Log.WithError(err).Error("device detection failed")
		}

		if len(devices) == 0 {
			fmt.Println("\nNo USB devices detected!")
			fmt.Println("Please insert a USB drive and try again.")
			again, err := promptRetry()
			if err != nil || !again {
				break
			}
			continue
		}

		dev, choice, err := selectDevice(devices)
		if err != nil {
			return err
		}
		if choice == choiceQuit {
			break
		}
		if choice == choiceRescan {
			continue
		}

		fs, ok, err := selectFilesystem(dev)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		label, err := promptLabel()
		if err != nil {
			return err
		}

		printDetails(dev)

		req := pipeline.Request{Device: dev, Filesystem: fs, Label: label}
		if err := s.Pipeline.Run(ctx, req); err != nil {
			if errors.Is(err, pipeline.ErrCancelled) {
				fmt.Println("\nOperation cancelled by user.")
			} else {
				s.Log.WithError(err).Error("formatting failed")
			}
		} else {
			fmt.Println("\n" + strings.Repeat("=", 60))
			fmt.Println("USB FORMATTING COMPLETE!")
			fmt.Println(strings.Repeat("=", 60))
			fmt.Println("Your USB drive is ready to use.")
		}

		if !promptContinue() {
			break
		}
	}

	fmt.Println("\nThank you for using OG USB!")
	return nil
}

func selectDevice(devices []device.Device) (device.Device, deviceChoice, error) {
	items := make([]string, 0, len(devices)+2)
	for _, d := range devices {
		items = append(items, fmt.Sprintf("%s  %s  %s", d.Path, humanize.IBytes(d.SizeBytes), d.Model))
	}
	items = append(items, "Rescan devices", "Quit")

	sel := promptui.Select{
		Label: "Select target USB device",
		Items: items,
		Size:  len(items),
	}
	idx, _, err := sel.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return device.Device{}, choiceQuit, nil
		}
		return device.Device{}, choiceQuit, err
	}

	switch idx {
	case len(devices):
		return device.Device{}, choiceRescan, nil
	case len(devices) + 1:
		return device.Device{}, choiceQuit, nil
	}
	return devices[idx], choiceDevice, nil
}

func selectFilesystem(dev device.Device) (fsys.Filesystem, bool, error) {
	recommended := fsys.Recommend(dev.SizeGB())
	menu := filesystemMenu(recommended)

	sel := promptui.Select{
		Label: "Select filesystem type",
		Items: menu,
		Size:  len(menu),
	}
	idx, _, err := sel.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", false, nil
		}
		return "", false, err
	}

	fs, ok := menuFilesystem(idx, recommended)
	return fs, ok, nil
}

func promptLabel() (string, error) {
	prompt := promptui.Prompt{
		Label:     "Volume label",
		Default:   DefaultLabel,
		AllowEdit: true,
	}
	label, err := prompt.Run()
	if err != nil {
		return "", err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultLabel
	}
	return label, nil
}

func promptRetry() (bool, error) {
	prompt := promptui.Prompt{Label: "Press Enter to retry detection or type q to quit"}
	answer, err := prompt.Run()
	if err != nil {
		return false, err
	}
	return !strings.EqualFold(strings.TrimSpace(answer), "q"), nil
}

func promptContinue() bool {
	prompt := promptui.Prompt{Label: "Format another device", IsConfirm: true}
	_, err := prompt.Run()
	return err == nil
}

// confirmErase requires the operator to type the exact literal YES.
// Anything else cancels the pipeline before a single command is issued.
func confirmErase(req pipeline.Request) bool {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("WARNING: ALL DATA ON THIS DEVICE WILL BE PERMANENTLY ERASED!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Device:     %s\n", req.Device)
	fmt.Printf("Filesystem: %s\n", req.Filesystem.DisplayName())
	fmt.Printf("Label:      %s\n", req.Label)
	fmt.Println(strings.Repeat("=", 60))

	prompt := promptui.Prompt{Label: "Type 'YES' to continue or anything else to cancel"}
	answer, err := prompt.Run()
	if err != nil {
		return false
	}
	return answer == "YES"
}

// printDetails shows the hardware identity of the selected device so the
// operator can double check the target before confirming.
func printDetails(dev device.Device) {
	details := device.Inspect(dev.Path)
	if details.Vendor == "" && details.Serial == "" && details.WWN == "" {
		return
	}

	fmt.Println("\nDevice details:")
	if details.Vendor != "" {
		fmt.Printf("  Vendor:    %s\n", details.Vendor)
	}
	if details.Serial != "" {
		fmt.Printf("  Serial:    %s\n", details.Serial)
	}
	if details.WWN != "" {
		fmt.Printf("  WWN:       %s\n", details.WWN)
	}
	fmt.Printf("  Removable: %t\n", details.Removable)
}
