package syscalls

import (
	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/kernel"
)

// SysWaitIO implements syscall 5 (§4.5 point 5): compute the device-
// semaphore index for (intLine, devNum[, waitForTermRead]), increment
// soft_block_count, then perform an internal P on that semaphore. On
// unblock, interrupt.Handle has already copied the device's status word
// into the resumed PCB's v0 (§4.6 step 3c) — WaitIO itself never touches
// v0.
func SysWaitIO(n *kernel.Nucleus, intLine, devNum int, waitForTermRead bool) error {
	idx := deviceSemIndex(intLine, devNum, waitForTermRead)

	n.SoftBlockCount++
	_, err := P(n, &n.DeviceSems[idx])
	return err
}

// deviceSemIndex applies §6's indexing formula.
func deviceSemIndex(intLine, devNum int, waitForTermRead bool) int {
	if intLine == devices.LineTerminal {
		sub := devices.SubTransmitter
		if waitForTermRead {
			sub = devices.SubReceiver
		}
		return devices.TerminalSemIndex(devNum, sub)
	}
	return devices.SemIndex(intLine, devNum)
}

// SysWaitClock implements syscall 7 (§4.5 point 7): increment
// soft_block_count and perform an internal P on the pseudo-clock
// semaphore, which accounts the caller's CPU time.
func SysWaitClock(n *kernel.Nucleus) error {
	n.SoftBlockCount++
	_, err := P(n, &n.DeviceSems[devices.ClockSemIndex])
	return err
}
