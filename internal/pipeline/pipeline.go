package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ogusb/ogusb/internal/device"
	"github.com/ogusb/ogusb/internal/fsys"
	"github.com/ogusb/ogusb/internal/platform"
	"github.com/ogusb/ogusb/internal/shell"
)

// Stage identifies a step of the formatting pipeline.
type Stage string

const (
	StageWipe      Stage = "wipe"
	StagePartition Stage = "partition"
	StageFormat    Stage = "format"
	StageVerify    Stage = "verify"
)

// wipePrefixMiB bounds the zeroed region at the start of the device.
// Clearing the first 100MiB makes prior filesystem signatures
// unrecognizable without the runtime cost of a full overwrite.
const wipePrefixMiB = 100

// DefaultSettlePause is how long the pipeline waits after partitioning
// for the kernel to re-enumerate the new partition.
const DefaultSettlePause = 2 * time.Second

// ErrCancelled is returned when the operator declines the confirmation.
var ErrCancelled = errors.New("operation cancelled by user")

// StageError reports which pipeline stage failed. The device is left in
// whatever state the last successful stage produced; there is no
// rollback.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Request describes one formatting run.
type Request struct {
	Device     device.Device
	Filesystem fsys.Filesystem
	Label      string
}

// MountLister finds the mounted partitions of a device before the wipe.
type MountLister func(devicePath string) ([]string, error)

// Pipeline executes the destructive wipe -> partition -> format ->
// verify sequence over external utilities. Stages run strictly in
// order and the first failure aborts the run. Confirm must be set; a
// run without an affirmative confirmation issues no commands.
type Pipeline struct {
	Runner      shell.Runner
	Log         logrus.FieldLogger
	Confirm     func(Request) bool
	Mounts      MountLister
	SettlePause time.Duration
}

func New(runner shell.Runner, log logrus.FieldLogger) *Pipeline {
	return &Pipeline{
		Runner:      runner,
		Log:         log,
		Mounts:      platform.MountedPartitions,
		SettlePause: DefaultSettlePause,
	}
}

// Run drives the pipeline for one request. It returns ErrCancelled when
// the operator does not confirm, and a StageError naming the failed
// stage on any other abort.
func (p *Pipeline) Run(ctx context.Context, req Request) error {
	if p.Confirm == nil || !p.Confirm(req) {
		return ErrCancelled
	}

	fmt.Printf("\n[1/4] Wiping device %s...\n", req.Device.Path)
	if err := p.wipe(ctx, req); err != nil {
		return &StageError{Stage: StageWipe, Err: err}
	}

	fmt.Printf("\n[2/4] Creating partition on %s...\n", req.Device.Path)
	if err := p.partition(ctx, req); err != nil {
		return &StageError{Stage: StagePartition, Err: err}
	}

	fmt.Printf("\n[3/4] Formatting partition as %s...\n", req.Filesystem.DisplayName())
	if err := p.format(ctx, req); err != nil {
		return &StageError{Stage: StageFormat, Err: err}
	}

	fmt.Printf("\n[4/4] Verifying %s...\n", req.Device.Path)
	if err := p.verify(ctx, req); err != nil {
		return &StageError{Stage: StageVerify, Err: err}
	}
	return nil
}

// wipe unmounts any mounted partitions of the device (best effort),
// zeroes the signature region and flushes.
func (p *Pipeline) wipe(ctx context.Context, req Request) error {
	dev := req.Device.Path
	log := p.Log.WithField("device", dev)

	if p.Mounts != nil {
		mounted, err := p.Mounts(dev)
		if err != nil {
			log.WithError(err).Warn("could not list mounted partitions")
		}
		for _, part := range mounted {
			if _, err := p.Runner.Run(ctx, "umount", part); err != nil {
				log.WithError(err).WithField("partition", part).Warn("umount failed")
			}
		}
	}

	log.Infof("zeroing first %dMiB of device", wipePrefixMiB)
	if _, err := p.Runner.Run(ctx, "dd",
		"if=/dev/zero", "of="+dev, "bs=1M",
		fmt.Sprintf("count=%d", wipePrefixMiB), "status=progress"); err != nil {
		return err
	}
	_, err := p.Runner.Run(ctx, "sync")
	return err
}

// partition writes a fresh GPT table with a single partition spanning
// the whole device.
func (p *Pipeline) partition(ctx context.Context, req Request) error {
	dev := req.Device.Path
	p.Log.WithField("device", dev).Info("creating GPT partition table")

	if _, err := p.Runner.Run(ctx, "parted", "-s", dev, "mklabel", "gpt"); err != nil {
		return err
	}
	if _, err := p.Runner.Run(ctx, "parted", "-s", dev, "mkpart", "primary", "0%", "100%"); err != nil {
		return err
	}
	if _, err := p.Runner.Run(ctx, "sync"); err != nil {
		return err
	}

	// Wait for the kernel to re-enumerate the new partition before any
	// stage addresses it.
	time.Sleep(p.SettlePause)
	return nil
}

func (p *Pipeline) format(ctx context.Context, req Request) error {
	if !req.Filesystem.Supported() {
		return fmt.Errorf("unsupported filesystem type: %s", req.Filesystem)
	}

	part := device.PartitionPath(req.Device.Path, 1)
	name, args, err := req.Filesystem.MkfsCommand(part, req.Label)
	if err != nil {
		return err
	}

	p.Log.WithFields(logrus.Fields{
		"partition":  part,
		"filesystem": req.Filesystem.DisplayName(),
		"label":      req.Label,
	}).Info("formatting partition")

	if _, err := p.Runner.Run(ctx, name, args...); err != nil {
		return err
	}
	_, err = p.Runner.Run(ctx, "sync")
	return err
}

// verify queries filesystem metadata on the new partition. No
// recognizable filesystem means the format did not take.
func (p *Pipeline) verify(ctx context.Context, req Request) error {
	part := device.PartitionPath(req.Device.Path, 1)
	out, err := p.Runner.Run(ctx, "lsblk", "-f", "-n", "-o", "NAME,FSTYPE,LABEL,UUID", part)
	if err != nil {
		return err
	}
	if len(strings.Fields(out)) < 2 {
		return fmt.Errorf("no filesystem metadata found on %s", part)
	}

	fmt.Println("\nDevice information:")
	fmt.Println(out)
	return nil
}
