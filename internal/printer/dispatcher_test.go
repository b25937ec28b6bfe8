package printer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatch_WritesStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	assert.NoError(t, os.WriteFile(path, nil, 0o644))

	d := NewDeviceDispatcher(path, zap.NewNop())
	stream := []byte{0x1B, '@', 'h', 'i', 0x1D, 'V', 1}

	assert.NoError(t, d.Dispatch(context.Background(), stream))

	written, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, stream, written)
}

func TestDispatch_DeviceNotFound(t *testing.T) {
	d := NewDeviceDispatcher(filepath.Join(t.TempDir(), "missing"), zap.NewNop())

	err := d.Dispatch(context.Background(), []byte{0x1B, '@'})
	assert.Error(t, err)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindDeviceNotFound, kind)
}

func TestDispatch_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}

	path := filepath.Join(t.TempDir(), "lp0")
	assert.NoError(t, os.WriteFile(path, nil, 0o000))

	d := NewDeviceDispatcher(path, zap.NewNop())
	err := d.Dispatch(context.Background(), []byte{0x1B, '@'})

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindPermissionDenied, kind)
}

func TestDispatch_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp0")
	assert.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDeviceDispatcher(path, zap.NewNop())
	err := d.Dispatch(ctx, []byte{0x1B, '@'})
	assert.ErrorIs(t, err, context.Canceled)

	// nothing reached the device
	written, readErr := os.ReadFile(path)
	assert.NoError(t, readErr)
	assert.Empty(t, written)
}

func TestKindOf_Classification(t *testing.T) {
	d := NewDeviceDispatcher("/dev/null", zap.NewNop())

	notFound := d.classify(os.ErrNotExist)
	assert.Equal(t, KindDeviceNotFound, notFound.Kind)

	denied := d.classify(os.ErrPermission)
	assert.Equal(t, KindPermissionDenied, denied.Kind)

	busy := d.classify(syscall.EBUSY)
	assert.Equal(t, KindDeviceBusy, busy.Kind)

	unknown := d.classify(errors.New("boom"))
	assert.Equal(t, KindUnknown, unknown.Kind)
}

func TestKindOf_ForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("not a dispatch error"))
	assert.False(t, ok)
}

func TestDispatchError_Unwrap(t *testing.T) {
	inner := os.ErrNotExist
	err := &DispatchError{Kind: KindDeviceNotFound, Path: "/dev/usb/lp0", Err: inner}

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "device_not_found")
	assert.Contains(t, err.Error(), "/dev/usb/lp0")
}
