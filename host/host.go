// Package host reports static facts about the simulated machine the
// nucleus runs on: a reader interface over a small set of kernel/hardware
// facts, pointed at the emulated machine's own fixed characteristics (§6)
// rather than a real Linux box's /proc and /etc/os-release.
package host

import (
	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// DefaultVersion is reported when a SimulatedReaderConfig leaves Version
// unset.
const DefaultVersion = "unversioned"

// Kernel describes the nucleus build running the simulation.
type Kernel struct {
	Name    string
	Version string
}

// Hardware describes the emulated machine's fixed capacity (§6, §4.1,
// §4.2): a single CPU, a fixed device topology, and a fixed PCB/SEMD
// arena size — there is no real hardware behind any of these numbers.
type Hardware struct {
	CPUCount       int
	DeviceLines    int
	DevicesPerLine int
	PCBPoolSize    int
	Architecture   string
}

// MachineReader defines the actions available for retrieving information
// about the simulated machine.
type MachineReader interface {
	GetKernel() (*Kernel, error)
	GetHardware() (*Hardware, error)
}

// SimulatedReader is the nucleus's implementation of MachineReader: it
// reports the fixed constants this module boots with rather than probing
// any real operating system.
type SimulatedReader struct {
	version string
}

// SimulatedReaderConfig configures a SimulatedReader. Version defaults to
// DefaultVersion when left unset.
type SimulatedReaderConfig struct {
	Version string
}

// NewSimulatedReader constructs a SimulatedReader, filling in defaults for
// any zero-valued config fields.
func NewSimulatedReader(conf SimulatedReaderConfig) SimulatedReader {
	if conf.Version == "" {
		conf.Version = DefaultVersion
	}
	return SimulatedReader{version: conf.Version}
}

// GetKernel reports the nucleus build's name and version. There is no
// kernel release file to parse; the version is whatever the caller (the
// "pandos" binary, at link time) configured the reader with.
func (r *SimulatedReader) GetKernel() (*Kernel, error) {
	return &Kernel{Name: "pandos", Version: r.version}, nil
}

// GetHardware reports the emulated machine's fixed capacity: one CPU, the
// device topology from the devices package, and the PCB arena size from
// the pcb package.
func (r *SimulatedReader) GetHardware() (*Hardware, error) {
	return &Hardware{
		CPUCount:       1,
		DeviceLines:    devices.NumDeviceLines,
		DevicesPerLine: devices.PerInterrupt,
		PCBPoolSize:    pcb.PoolSize,
		Architecture:   "MIPS-like (simulated)",
	}, nil
}
