package cmd

import (
	"path/filepath"
	"testing"

	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/kernel"
)

type fakeBus struct{}

func (fakeBus) Pending(line int) uint32                    { return 0 }
func (fakeBus) Device(line, dev int) *devices.Registers     { return &devices.Registers{} }
func (fakeBus) Terminal(dev int) *devices.TerminalRegisters { return &devices.TerminalRegisters{} }

func TestWriteAndReadSnapshotRoundTrip(t *testing.T) {
	n := kernel.NewNucleus(fakeBus{}, devices.NewFakeClock())
	idx, _ := n.Pool.Alloc()
	n.Current = idx

	path := filepath.Join(t.TempDir(), "snapshot.json")
	writeSnapshot(n, path)

	snap, err := readSnapshot(path)
	if err != nil {
		t.Fatalf("unexpected error reading snapshot back: %v", err)
	}
	if len(snap.Processes) != 1 {
		t.Fatalf("expected 1 process in the round-tripped snapshot, got %d", len(snap.Processes))
	}
	if len(snap.Semaphores) != devices.NumSemaphores {
		t.Fatalf("expected %d semaphore cells, got %d", devices.NumSemaphores, len(snap.Semaphores))
	}
}

func TestResolveSnapshotPathHonorsOverride(t *testing.T) {
	if got := resolveSnapshotPath("/tmp/custom.json"); got != "/tmp/custom.json" {
		t.Fatalf("expected override path to be honored, got %s", got)
	}
}

func TestReadSnapshotMissingFileFails(t *testing.T) {
	if _, err := readSnapshot(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing snapshot file")
	}
}
