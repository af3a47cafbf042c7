// Package devices models the peripheral bus: the interrupt-line/device
// numbering scheme, device register layouts, status/command codes, and the
// semaphore-index formula the nucleus uses to map a device interrupt onto
// one of its 49 device semaphores.
package devices

// Interrupt lines (§6). Line 0 (inter-processor interrupt) and line 1 (PLT)
// and line 2 (interval timer) are not device lines; lines 3-7 are.
const (
	LinePLT      = 1
	LineInterval = 2
	LineDisk     = 3
	LineFlash    = 4
	LineNetwork  = 5
	LinePrinter  = 6
	LineTerminal = 7
)

// PerInterrupt is the number of devices attached to each of the five device
// interrupt lines.
const PerInterrupt = 8

// NumDeviceLines is the number of interrupt lines devices (as opposed to
// timers) are attached to: disk, flash, network, printer, terminal.
const NumDeviceLines = 5

// NumDeviceSemaphores is the number of semaphores reserved for devices
// (8 devices on each of the four non-terminal lines, plus two sub-devices
// for each of the 8 terminals: 32 + 16 = 48).
const NumDeviceSemaphores = (NumDeviceLines-1)*PerInterrupt + 2*PerInterrupt

// ClockSemIndex is the index of the pseudo-clock semaphore, one past the
// last device semaphore.
const ClockSemIndex = NumDeviceSemaphores

// NumSemaphores is the total size of the device-semaphore array (49): one
// per non-terminal device, two per terminal sub-device, plus the
// pseudo-clock.
const NumSemaphores = NumDeviceSemaphores + 1

// Register field offsets for non-terminal devices.
const (
	FieldStatus  = 0
	FieldCommand = 1
	FieldData0   = 2
	FieldData1   = 3
)

// Register field offsets for terminal devices.
const (
	FieldRecvStatus  = 0
	FieldRecvCommand = 1
	FieldTransStatus = 2
	FieldTransCommand = 3
)

// Common device status codes.
const (
	StatusUninstalled = 0
	StatusReady       = 1
	StatusBusy        = 3
)

// Common device command codes.
const (
	CommandReset = 0
	CommandAck   = 1
)

// SemIndex computes the device-semaphore array index for a non-terminal
// device interrupt: disk/flash/network/printer only (lines 3-6).
func SemIndex(line, dev int) int {
	return (line-LineDisk)*PerInterrupt + dev
}

// TerminalSemIndex computes the device-semaphore array index for a
// terminal sub-device: sub 0 is the transmitter, sub 1 is the receiver.
func TerminalSemIndex(dev, sub int) int {
	return (LineTerminal-LineDisk)*PerInterrupt + dev*2 + sub
}

// SubTransmitter and SubReceiver name the two terminal sub-device slots
// TerminalSemIndex accepts for its sub parameter.
const (
	SubTransmitter = 0
	SubReceiver    = 1
)

// Registers is the memory-mapped register block for one non-terminal
// device: status, command, and two data words.
type Registers struct {
	Status  uint32
	Command uint32
	Data0   uint32
	Data1   uint32
}

// TerminalRegisters is the memory-mapped register block for one terminal
// device: independent receiver and transmitter status/command pairs.
type TerminalRegisters struct {
	RecvStatus     uint32
	RecvCommand    uint32
	TransStatus    uint32
	TransCommand   uint32
}

// Bus is the set of memory-mapped device registers and the interrupting-
// device bitmaps the nucleus's interrupt handler reads. It stands in for
// the physical bus a real BIOS/hardware layer would back; callers supply a
// concrete implementation (the production one over shared memory, or a
// scripted one for tests).
type Bus interface {
	// Pending returns the interrupting-device bitmap for an interrupt
	// line: bit i set means device i on that line has a pending
	// interrupt.
	Pending(line int) uint32

	// Device returns the register block for a non-terminal device.
	Device(line, dev int) *Registers

	// Terminal returns the register block for a terminal device.
	Terminal(dev int) *TerminalRegisters
}

// HighestPriorityDevice returns the lowest-numbered device with a pending
// interrupt on the given bitmap, or -1 if none.
func HighestPriorityDevice(bitmap uint32) int {
	for i := 0; i < PerInterrupt; i++ {
		if bitmap&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

// HighestPriorityLine returns the lowest-numbered interrupt line with a
// pending interrupt in the IP bitmask (lines 0-7, per the cause register's
// IP field), or -1 if none.
func HighestPriorityLine(pending uint32) int {
	for i := 0; i <= 7; i++ {
		if pending&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}
