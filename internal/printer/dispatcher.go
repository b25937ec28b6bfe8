// Package printer writes composed command streams to the attached
// thermal printer device.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"go.uber.org/zap"
)

// ErrorKind is the closed set of dispatch failure classes. Callers
// switch on the kind, never on the underlying error text.
type ErrorKind string

const (
	KindDeviceNotFound   ErrorKind = "device_not_found"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindDeviceBusy       ErrorKind = "printer_busy"
	KindUnknown          ErrorKind = "unknown"
)

// DispatchError reports a failed write to the printer device.
type DispatchError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("printer dispatch to %s failed (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain, or ok=false
// when the error did not come from a dispatch.
func KindOf(err error) (ErrorKind, bool) {
	var de *DispatchError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// Dispatcher hands an opaque command stream to the printer. The write
// is synchronous and is not interruptible once started; no retry is
// performed.
type Dispatcher interface {
	Dispatch(ctx context.Context, stream []byte) error
}

// DeviceDispatcher writes to a character device path (e.g. /dev/usb/lp0
// or a virtual serial port).
type DeviceDispatcher struct {
	path string
	log  *zap.Logger
}

func NewDeviceDispatcher(path string, log *zap.Logger) *DeviceDispatcher {
	return &DeviceDispatcher{
		path: path,
		log:  log.Named("printer.dispatcher"),
	}
}

func (d *DeviceDispatcher) Dispatch(ctx context.Context, stream []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(d.path, os.O_WRONLY, 0)
	if err != nil {
		return d.classify(err)
	}
	defer f.Close()

	n, err := f.Write(stream)
	if err != nil {
		return d.classify(err)
	}

	d.log.Info("receipt dispatched",
		zap.String("device", d.path),
		zap.Int("bytes", n),
	)
	return nil
}

func (d *DeviceDispatcher) classify(err error) *DispatchError {
	kind := KindUnknown
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindDeviceNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermissionDenied
	case errors.Is(err, syscall.EBUSY):
		kind = KindDeviceBusy
	}

	d.log.Error("receipt dispatch failed",
		zap.String("device", d.path),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)

	return &DispatchError{Kind: kind, Path: d.path, Err: err}
}
