package cmd

import (
	"fmt"
	"os"

	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/except"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
	"github.com/harisiqbal10/pandos-phase2/support"
	"github.com/harisiqbal10/pandos-phase2/syscalls"
	"github.com/spf13/cobra"
)

// hardwareTimers is the run command's stand-in for the real process-local
// and interval timer registers: a synchronous, single-process-at-a-time
// harness has no asynchronous hardware to arm, so it only remembers the
// last reload value.
type hardwareTimers struct {
	plt      int
	interval int
}

func (t *hardwareTimers) SetPLT(microseconds int)           { t.plt = microseconds }
func (t *hardwareTimers) SetIntervalTimer(microseconds int) { t.interval = microseconds }

func runRun(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		os.Exit(1)
	}
	opts := newOptions(cmd.Flags())

	prog, err := loadProgram(args[0])
	if err != nil {
		outputErrorAndFail(err.Error())
	}

	rig := support.NewRig()
	n := kernel.NewNucleus(rig, devices.NewFakeClock())
	if opts.trace {
		n.OnDispatch = func(idx pcb.Index) {
			fmt.Printf("dispatch: pcb %d\n", idx)
		}
	}
	if err := n.Init(rig, kernel.FirstProcessState{PC: prog.EntryPC, SP: prog.StackP}); err != nil {
		outputErrorAndFail(fmt.Sprintf("boot failed: %s", err))
	}

	timers := &hardwareTimers{}
	var state cpuctx.State
	if err := n.Schedule(&state, timers.SetPLT); err != nil {
		reportRunOutcome(err)
		writeSnapshot(n, opts.snapshotPath)
		return
	}

	for _, st := range prog.Steps {
		if st.DeviceRaise != nil {
			applyRaise(rig, st.DeviceRaise)
		}
		state.Cause = st.ExcCode << 2
		if st.UserMode {
			state.Status |= cpuctx.StatusKUp
		} else {
			state.Status &^= cpuctx.StatusKUp
		}

		scArgs := syscalls.Args{}
		if st.Syscall != nil {
			state.Regs[cpuctx.RegA0] = st.Syscall.Number
			scArgs = st.Syscall.resolveArgs(&n.DeviceSems)
		}

		if _, err := except.Dispatch(n, &state, timers, scArgs); err != nil {
			reportRunOutcome(err)
			break
		}
	}

	writeSnapshot(n, opts.snapshotPath)
}

// applyRaise drives the Rig the same way the production device emulator
// would after completing an operation: setting the device's status
// register and its pending-interrupt bit.
func applyRaise(rig *support.Rig, r *deviceRaise) {
	switch {
	case r.Line == devices.LineTerminal && r.Terminal == "trans":
		rig.RaiseTerminalTrans(r.Dev, r.Status)
	case r.Line == devices.LineTerminal:
		rig.RaiseTerminalRecv(r.Dev, r.Status)
	default:
		rig.Raise(r.Line, r.Dev, r.Status)
	}
}

// reportRunOutcome prints a human-readable line for the three ways the
// nucleus's Schedule/Dispatch family can end a run: halt, wait, or panic.
func reportRunOutcome(err error) {
	switch {
	case err == kernel.ErrHalt:
		fmt.Println("nucleus halted: no processes remain")
	case err == kernel.ErrWait:
		fmt.Println("nucleus waiting: ready queue empty, soft-blocked processes remain")
	default:
		fmt.Fprintf(os.Stderr, "nucleus panic: %s\n", err)
	}
}
