package kernel

import (
	"github.com/harisiqbal10/pandos-phase2/asl"
	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

// NewNucleus constructs an empty Nucleus: zeroed counters, an empty ready
// queue, no current process, and every device semaphore (including the
// pseudo-clock at devices.ClockSemIndex) reset to 0. bus and clock stand in
// for the externally provided device emulator and TOD source (§1, §6).
func NewNucleus(bus devices.Bus, clock devices.Clock) *Nucleus {
	return &Nucleus{
		Pool:    pcb.NewPool(),
		ASL:     asl.NewList(),
		Current: pcb.None,
		Ready:   pcb.NewQueue(),
		Bus:     bus,
		Clock:   clock,
	}
}

// FirstProcessState describes the processor state the first process (the
// externally supplied test program, §1) should begin executing with. The
// caller resolves the entry PC/SP; the nucleus does not know how to locate
// the test program's image.
type FirstProcessState struct {
	PC uint32
	SP uint32
}

// Init installs the pass-up vector, seeds the process and semaphore pools
// (already done by NewNucleus), and creates the first process (C4). It
// mirrors the original's createProcess: kernel mode, interrupts and the
// local timer enabled, no parent, zero accumulated time, placed at the tail
// of the ready queue.
func (n *Nucleus) Init(vector PassUpVectorInstaller, first FirstProcessState) error {
	vector.InstallPassUpVector()

	idx, ok := n.Pool.Alloc()
	if !ok {
		return Panic("init: pcb pool exhausted allocating the first process")
	}

	p := n.Pool.Get(idx)
	p.State.Status = statusIEpOn | statusTEOn
	p.State.Regs[29] = first.SP // sp
	p.State.PC = first.PC

	n.Ready.Insert(n.Pool, idx)
	n.ProcCount++
	return nil
}

// statusIEpOn and statusTEOn mirror the original's
// IEPBITON | (TEBITON & KUPBITOFF): interrupts enabled, local timer
// enabled, kernel mode (KUp left clear).
const (
	statusIEpOn = 0x4
	statusTEOn  = 0x08000000
)

// PassUpVectorInstaller installs the TLB-refill and exception handler
// entry points into the BIOS data page's pass-up vector at boot. The
// concrete implementation and the handler entry addresses themselves are
// external collaborators (§6); the nucleus only triggers the install.
type PassUpVectorInstaller interface {
	InstallPassUpVector()
}
