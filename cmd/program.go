package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/syscalls"
)

// program is the "ROM" run takes: this harness has no real emulated memory
// to fetch instructions from (§1 Non-goals), so a program image is a
// scripted sequence of exceptions, the same stand-in support.Rig already
// plays for the BIOS and device emulator, just read from a file instead of
// written inline in a test.
type program struct {
	EntryPC uint32 `json:"entry_pc"`
	StackP  uint32 `json:"stack_pointer"`
	Steps   []step `json:"steps"`
}

// step describes one exception for the run loop to present to the current
// process: which ExcCode fired, an optional device raise to apply first
// (simulating a device completing an operation), and, for syscall
// steps, the already-resolved arguments except.Dispatch needs.
type step struct {
	ExcCode     uint32       `json:"exc_code"`
	UserMode    bool         `json:"user_mode,omitempty"`
	DeviceRaise *deviceRaise `json:"device_raise,omitempty"`
	Syscall     *scriptedCall `json:"syscall,omitempty"`
}

type deviceRaise struct {
	Line     int    `json:"line"`
	Dev      int    `json:"dev"`
	Status   uint32 `json:"status"`
	Terminal string `json:"terminal,omitempty"` // "recv" or "trans"; ignored for non-terminal lines
}

// scriptedCall names a nucleus syscall number and the argument fields
// syscalls.Args needs, resolved ahead of time the way the harness that owns
// the trapping process's "memory" would (syscalls.Args's doc comment).
type scriptedCall struct {
	Number          uint32 `json:"number"`
	SemIndex        int    `json:"sem_index,omitempty"`
	IntLine         int    `json:"int_line,omitempty"`
	DevNum          int    `json:"dev_num,omitempty"`
	WaitForTermRead bool   `json:"wait_for_term_read,omitempty"`
}

func loadProgram(path string) (*program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program image: %s", err)
	}
	var p program
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing program image: %s", err)
	}
	return &p, nil
}

// resolveArgs turns a scriptedCall into syscalls.Args, binding SemIndex
// against the live nucleus's device-semaphore array the way a real P/V
// caller's a1 register would resolve to one of those cells.
func (sc *scriptedCall) resolveArgs(sems *[devices.NumSemaphores]int32) syscalls.Args {
	args := syscalls.Args{
		IntLine:         sc.IntLine,
		DevNum:          sc.DevNum,
		WaitForTermRead: sc.WaitForTermRead,
	}
	if sc.SemIndex >= 0 && sc.SemIndex < len(sems) {
		args.SemAddr = &sems[sc.SemIndex]
	}
	return args
}
