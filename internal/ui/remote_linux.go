//go:build linux

package ui

import (
	"context"
	"path/filepath"

	evdev "github.com/holoplot/go-evdev"
)

var remoteKeys = map[evdev.EvCode]RemoteAction{
	evdev.KEY_CHANNELUP:    RemoteNext,
	evdev.KEY_NEXTSONG:     RemoteNext,
	evdev.KEY_NEXT:         RemoteNext,
	evdev.KEY_CHANNELDOWN:  RemotePrev,
	evdev.KEY_PREVIOUSSONG: RemotePrev,
	evdev.KEY_PREVIOUS:     RemotePrev,
	evdev.KEY_HOMEPAGE:     RemoteFirst,
	evdev.KEY_BACK:         RemoteFirst,
}

// Watch opens every readable input device and records key presses until
// ctx is done. Devices without permission are skipped.
func (r *Remote) Watch(ctx context.Context) error {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return err
	}
	opened := 0
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		opened++
		go r.read(ctx, dev, filepath.Base(p.Path))
	}
	r.log().Debug("remote: watching input devices", "opened", opened, "found", len(paths))
	return nil
}

func (r *Remote) read(ctx context.Context, dev *evdev.InputDevice, device string) {
	// The closer goroutine owns dev.Close so a blocked ReadOne is released
	// on cancel and the device is closed exactly once.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		dev.Close()
	}()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}
		action, ok := remoteKeys[ev.Code]
		r.press(device, uint16(ev.Code), action, ok)
	}
}
