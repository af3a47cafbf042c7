// Package config holds the nucleus's boot configuration: the handful of
// values Design Notes §9's original is compiled with fixed constants for
// (quantum, pool sizes, the pseudo-clock period) plus the on-disk locations
// the "run" command snapshots a boot to. An options struct with a
// defaulting constructor, rather than a global singleton: callers build a
// Config and pass it explicitly.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName      = "pandos"
	snapshotDirName = "snapshots"
)

// Config is the nucleus's boot configuration. Zero-valued fields are filled
// in with defaults by New; callers only need to set what they want to
// override.
type Config struct {
	// Quantum is the process-local timer's reload value, in microseconds
	// (§6). Defaults to kernel.Quantum (5000).
	Quantum int

	// ClockInterval is the interval timer's reload value, in microseconds
	// (§6). Defaults to kernel.ClockInterval (100000).
	ClockInterval int

	// PoolSize is the number of PCB/SEMD arena slots (§4.1, §4.2). Defaults
	// to pcb.PoolSize (20).
	PoolSize int

	// SnapshotDir is where the "run" command writes the PCB table and ASL
	// dump a completed or halted boot leaves behind, for "ps"/"sem"/
	// "inspect" to later read. Defaults to $XDG_DATA_HOME/pandos/snapshots.
	SnapshotDir string

	// Trace records whether dispatch tracing is wanted. Nothing in this
	// package acts on it, and the CLI's --trace flag is read into the
	// command's own options rather than into this field.
	Trace bool
}

// New returns a Config with every zero-valued field replaced by its
// default. It takes the struct directly rather than variadic opts — there
// is exactly one configuration to build, not a family of platform-specific
// ones.
func New(opts Config) Config {
	cfg := opts
	if cfg.Quantum == 0 {
		cfg.Quantum = defaultQuantum
	}
	if cfg.ClockInterval == 0 {
		cfg.ClockInterval = defaultClockInterval
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = defaultPoolSize
	}
	if cfg.SnapshotDir == "" {
		cfg.SnapshotDir = defaultSnapshotDir()
	}
	return cfg
}

// Defaults mirror h/const.h's compiled-in constants (§6, SUPPLEMENTED
// FEATURES): MAXPROC=20, quantum 5000us, pseudo-clock period 100000us.
// Duplicated here as plain ints (rather than importing kernel/pcb) so this
// package stays a leaf — config has no business depending on the domain
// packages it merely parameterizes.
const (
	defaultQuantum       = 5000
	defaultClockInterval = 100000
	defaultPoolSize      = 20
)

// defaultSnapshotDir returns $XDG_DATA_HOME/pandos/snapshots, rooted at
// xdg.DataHome.
func defaultSnapshotDir() string {
	return filepath.Join(xdg.DataHome, appDirName, snapshotDirName)
}
