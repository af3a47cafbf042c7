package support

import "github.com/harisiqbal10/pandos-phase2/devices"

// Rig is a scripted stand-in for the BIOS, the device emulator, and the
// pass-up vector installer, sized to drive the nucleus through the
// end-to-end scenarios named in spec §8 without a real emulated machine.
// It is not a general-purpose MIPS emulator: registers only hold what a
// test script sets, and devices only raise interrupts when the script
// calls Raise.
type Rig struct {
	vectorInstalled bool

	devRegs  [devices.NumDeviceLines][devices.PerInterrupt]devices.Registers
	termRegs [devices.PerInterrupt]devices.TerminalRegisters
	pending  [devices.NumDeviceLines + 3]uint32 // indexed by interrupt line
}

// NewRig returns a Rig with every device uninstalled and no interrupts
// pending.
func NewRig() *Rig {
	r := &Rig{}
	for line := range r.devRegs {
		for dev := range r.devRegs[line] {
			r.devRegs[line][dev].Status = devices.StatusUninstalled
		}
	}
	for dev := range r.termRegs {
		r.termRegs[dev].RecvStatus = devices.StatusUninstalled
		r.termRegs[dev].TransStatus = devices.StatusUninstalled
	}
	return r
}

// InstallPassUpVector satisfies kernel.PassUpVectorInstaller.
func (r *Rig) InstallPassUpVector() { r.vectorInstalled = true }

// VectorInstalled reports whether Init has installed the pass-up vector,
// for tests asserting boot order.
func (r *Rig) VectorInstalled() bool { return r.vectorInstalled }

// Pending satisfies devices.Bus.
func (r *Rig) Pending(line int) uint32 {
	if line < 0 || line >= len(r.pending) {
		return 0
	}
	return r.pending[line]
}

// Device satisfies devices.Bus.
func (r *Rig) Device(line, dev int) *devices.Registers {
	idx := line - devices.LineDisk
	if idx < 0 || idx >= devices.NumDeviceLines || dev < 0 || dev >= devices.PerInterrupt {
		return &devices.Registers{}
	}
	return &r.devRegs[idx][dev]
}

// Terminal satisfies devices.Bus.
func (r *Rig) Terminal(dev int) *devices.TerminalRegisters {
	if dev < 0 || dev >= devices.PerInterrupt {
		return &devices.TerminalRegisters{}
	}
	return &r.termRegs[dev]
}

// Raise marks device dev on line as having a pending interrupt and sets its
// status register to status, simulating the device emulator completing an
// operation. The next interrupt.Handle call on that line will service it.
func (r *Rig) Raise(line, dev int, status uint32) {
	idx := line - devices.LineDisk
	if idx >= 0 && idx < devices.NumDeviceLines {
		r.devRegs[idx][dev].Status = status
	}
	r.pending[line] |= 1 << uint(dev)
}

// RaiseTerminalRecv and RaiseTerminalTrans simulate a terminal sub-device
// completing, mirroring how the real emulator reports which half of a
// terminal is interrupting (§6): the transmitter is checked first.
func (r *Rig) RaiseTerminalRecv(dev int, status uint32) {
	r.termRegs[dev].RecvStatus = status
	r.pending[devices.LineTerminal] |= 1 << uint(dev)
}

func (r *Rig) RaiseTerminalTrans(dev int, status uint32) {
	r.termRegs[dev].TransStatus = status
	r.pending[devices.LineTerminal] |= 1 << uint(dev)
}

// AckDevice clears the pending bit for dev on line, mirroring the
// interrupt handler writing ACK to the device's command register.
func (r *Rig) AckDevice(line, dev int) {
	r.pending[line] &^= 1 << uint(dev)
}
