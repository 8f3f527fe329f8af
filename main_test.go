package main

import (
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/smazurov/tulipd/internal/events"
	"github.com/smazurov/tulipd/internal/led"
	"github.com/smazurov/tulipd/internal/lights"
	"github.com/smazurov/tulipd/internal/lights/store"
	"github.com/smazurov/tulipd/internal/systemd"
)

type nopDriver struct{}

func (nopDriver) SetBrightness(string, uint32) error { return nil }

func (nopDriver) SetBlinkTime(string, led.BlinkTiming) error { return nil }

func (nopDriver) SetBlink(string, bool) error { return nil }

func (nopDriver) Available() []string { return nil }

func TestApplyStateFile(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "notify.sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: sock, Net: "unixgram"})
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer conn.Close()
	t.Setenv("NOTIFY_SOCKET", sock)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := events.New()
	ctrl := lights.NewController(lights.ControllerOptions{Driver: nopDriver{}, EventBus: bus, Logger: logger})

	var wg sync.WaitGroup
	var got events.StateFileReloadedEvent
	wg.Add(1)
	unsub := bus.Subscribe(func(e events.StateFileReloadedEvent) {
		got = e
		wg.Done()
	})
	defer unsub()

	file := &store.File{
		Version: store.CurrentVersion,
		Lights: map[string]lights.LightState{
			"battery":  {Color: 0x00ff0000},
			"keyboard": {Color: 0x00ffffff},
		},
	}
	applyStateFile("lights.toml", file, ctrl, bus, systemd.NewNotifier(logger), logger)

	buf := make([]byte, 256)
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("Failed to read notification: %v", err)
	}
	if status := string(buf[:n]); status != "STATUS=applied 1 lights from lights.toml" {
		t.Errorf("status = %q", status)
	}

	wg.Wait()
	if got.Path != "lights.toml" || len(got.Applied) != 1 || len(got.Skipped) != 1 || got.Skipped[0] != "keyboard" {
		t.Errorf("reload event = %+v", got)
	}
	if snap := ctrl.Snapshot(); snap.Active != lights.Battery {
		t.Errorf("active = %q, want battery", snap.Active)
	}
}
