// Package plib is the nucleus's process library: given a *kernel.Nucleus,
// it answers "what processes exist, what state are they in, who is whose
// parent" by reading the PCB arena and process tree directly, the way a
// process-inspection library over a real operating system's /proc would
// answer the same questions by parsing procfs stat lines.
package plib

import (
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// State names a PCB's scheduling state, the nucleus-domain replacement for
// procfs's single-character process state.
type State string

const (
	StateRunning State = "running"
	StateReady   State = "ready"
	StateBlocked State = "blocked"
)

// Process is a PCB's externally visible snapshot: a flattened, inspector-
// friendly view of the fields a caller would otherwise have to reach into
// kernel.Nucleus/pcb.Pool for directly.
type Process struct {
	ID       int
	ParentID int // -1 (int(pcb.None)) if the process has no parent
	State    State
	CPUTime  uint64
	HasSemaphore bool
	HasSupport   bool
}

// Processes indexes Process records by ID.
type Processes map[int]*Process

// ProcessRelation pairs a Process with its parent relation, for "tree"-
// style output — walking ParentID chains the way a ppid walk would.
type ProcessRelation struct {
	Process Process
	Parent  *ProcessRelation
}

// Inspector loads and returns every live process.
type Inspector interface {
	GetProcesses() (Processes, error)
}

// NucleusInspector implements Inspector over a live *kernel.Nucleus,
// reading directly from its PCB arena rather than a filesystem.
type NucleusInspector struct {
	n *kernel.Nucleus
}

// NewNucleusInspector constructs an Inspector bound to n.
func NewNucleusInspector(n *kernel.Nucleus) NucleusInspector {
	return NucleusInspector{n: n}
}

// GetProcesses enumerates every currently allocated PCB in the nucleus's
// arena and returns a flattened snapshot of each. There is no on-disk
// cache to maintain: the nucleus's PCB pool already is the source of
// truth, so every call simply re-reads it.
func (ni NucleusInspector) GetProcesses() (Processes, error) {
	ps := Processes{}
	for i := 0; i < pcb.PoolSize; i++ {
		idx := pcb.Index(i)
		if !ni.n.Pool.InUse(idx) {
			continue
		}
		p := ni.n.Pool.Get(idx)

		state := StateReady
		switch {
		case idx == ni.n.Current:
			state = StateRunning
		case p.SemAddr != nil:
			state = StateBlocked
		}

		ps[int(idx)] = &Process{
			ID:           int(idx),
			ParentID:     int(p.Parent()),
			State:        state,
			CPUTime:      p.CPUTime,
			HasSemaphore: p.SemAddr != nil,
			HasSupport:   p.Support != nil,
		}
	}
	return ps, nil
}

// BuildRelation walks id's ancestry up to the root, the same parent-chain
// walk over ppid a "tree" command performs.
func BuildRelation(ps Processes, id int) *ProcessRelation {
	proc, ok := ps[id]
	if !ok {
		return nil
	}
	rel := &ProcessRelation{Process: *proc}

	cur := rel
	parentID := proc.ParentID
	for parentID != int(pcb.None) {
		parent, ok := ps[parentID]
		if !ok {
			break
		}
		cur.Parent = &ProcessRelation{Process: *parent}
		cur = cur.Parent
		parentID = parent.ParentID
	}
	return rel
}
