package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harisiqbal10/pandos-phase2/config"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/plib"
)

const snapshotFileName = "snapshot.json"

// semSnapshot is one device-semaphore cell's persisted state: its index
// into Nucleus.DeviceSems, its current value, and whether the ASL
// considers it active (has a non-empty blocked queue).
type semSnapshot struct {
	Index  int   `json:"index"`
	Value  int32 `json:"value"`
	Active bool  `json:"active"`
}

// snapshot is what "run" leaves behind for "ps"/"sem"/"inspect" to read: a
// checkpoint of the PCB table and the device-semaphore array at the point
// the run loop stopped (halt, wait, panic, or simply ran out of scripted
// steps).
type snapshot struct {
	Processes  plib.Processes `json:"processes"`
	Semaphores []semSnapshot  `json:"semaphores"`
}

func defaultSnapshotPath() string {
	cfg := config.New(config.Config{})
	return filepath.Join(cfg.SnapshotDir, snapshotFileName)
}

func resolveSnapshotPath(override string) string {
	if override != "" {
		return override
	}
	return defaultSnapshotPath()
}

func writeSnapshot(n *kernel.Nucleus, path string) {
	path = resolveSnapshotPath(path)

	insp := plib.NewNucleusInspector(n)
	ps, err := insp.GetProcesses()
	if err != nil {
		outputErrorAndFail(fmt.Sprintf("failed collecting processes for snapshot: %s", err))
	}

	sems := make([]semSnapshot, 0, len(n.DeviceSems))
	for i := range n.DeviceSems {
		sems = append(sems, semSnapshot{
			Index:  i,
			Value:  n.DeviceSems[i],
			Active: n.ASL.Active(&n.DeviceSems[i]),
		})
	}

	snap := snapshot{Processes: ps, Semaphores: sems}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		outputErrorAndFail(fmt.Sprintf("failed encoding snapshot: %s", err))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		outputErrorAndFail(fmt.Sprintf("failed creating snapshot directory: %s", err))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		outputErrorAndFail(fmt.Sprintf("failed writing snapshot: %s", err))
	}
	fmt.Printf("wrote snapshot to %s\n", path)
}

func readSnapshot(path string) (*snapshot, error) {
	path = resolveSnapshotPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %s", path, err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %s", path, err)
	}
	return &snap, nil
}
