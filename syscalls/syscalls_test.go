package syscalls

import (
	"errors"
	"testing"

	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
	"github.com/harisiqbal10/pandos-phase2/support"
)

type fakeBus struct{}

func (fakeBus) Pending(line int) uint32                    { return 0 }
func (fakeBus) Device(line, dev int) *devices.Registers     { return &devices.Registers{} }
func (fakeBus) Terminal(dev int) *devices.TerminalRegisters { return &devices.TerminalRegisters{} }

func newRunningNucleus(t *testing.T) (*kernel.Nucleus, pcb.Index) {
	t.Helper()
	n := kernel.NewNucleus(fakeBus{}, devices.NewFakeClock())
	idx, ok := n.Pool.Alloc()
	if !ok {
		t.Fatalf("pcb pool exhausted setting up test")
	}
	n.Current = idx
	n.ProcCount = 1
	return n, idx
}

func TestCreateProcessSuccess(t *testing.T) {
	n, parent := newRunningNucleus(t)
	ret := SysCreateProcess(n, cpuctx.State{PC: 0x400}, nil)
	if ret != 0 {
		t.Fatalf("expected success (0), got %d", ret)
	}
	if n.ProcCount != 2 {
		t.Fatalf("expected proc_count 2, got %d", n.ProcCount)
	}
	child := n.Ready.Head(n.Pool)
	if child == pcb.None {
		t.Fatalf("expected the new process on the ready queue")
	}
	if n.Pool.Get(child).Parent() != parent {
		t.Fatalf("expected the new process to be a child of the caller")
	}
	if n.Pool.Get(child).State.PC != 0x400 {
		t.Fatalf("expected the new process's state to be copied verbatim")
	}
}

func TestCreateProcessExhaustion(t *testing.T) {
	n, _ := newRunningNucleus(t)
	for n.Pool.Free() > 0 {
		SysCreateProcess(n, cpuctx.State{}, nil)
	}
	if ret := SysCreateProcess(n, cpuctx.State{}, nil); ret != -1 {
		t.Fatalf("expected -1 once the pcb pool is exhausted, got %d", ret)
	}
}

func TestTerminateSubtree(t *testing.T) {
	n, a := newRunningNucleus(t)
	SysCreateProcess(n, cpuctx.State{}, nil) // B, child of A
	b := n.Ready.Head(n.Pool)
	n.Current = b
	SysCreateProcess(n, cpuctx.State{}, nil) // C, child of B
	n.Current = a

	SysTerminate(n, a)

	if n.ProcCount != 0 {
		t.Fatalf("expected proc_count 0 after terminating the whole subtree, got %d", n.ProcCount)
	}
	if n.Pool.Live() != 0 {
		t.Fatalf("expected every pcb to be freed, got %d live", n.Pool.Live())
	}
}

func TestPVRendezvousRestoresCount(t *testing.T) {
	n, _ := newRunningNucleus(t)
	var sem int32 = 1

	blocked, err := P(n, &sem)
	if err != nil || blocked {
		t.Fatalf("expected P on a positive semaphore to not block, got blocked=%v err=%v", blocked, err)
	}
	if sem != 0 {
		t.Fatalf("expected semaphore to read 0 after P, got %d", sem)
	}

	V(n, &sem)
	if sem != 1 {
		t.Fatalf("expected the P/V round trip to restore the semaphore, got %d", sem)
	}
}

func TestPBlocksAndVWakes(t *testing.T) {
	n, a := newRunningNucleus(t)
	var sem int32

	blocked, err := P(n, &sem)
	if err != nil || !blocked {
		t.Fatalf("expected P on a zero semaphore to block, got blocked=%v err=%v", blocked, err)
	}
	if n.Current != pcb.None {
		t.Fatalf("expected current process to be cleared once blocked")
	}
	if n.Pool.Get(a).SemAddr != &sem {
		t.Fatalf("expected the blocked pcb's SemAddr to be set")
	}

	V(n, &sem)
	if n.Ready.Head(n.Pool) != a {
		t.Fatalf("expected V to move the blocked process back onto the ready queue")
	}
	if n.Pool.Get(a).SemAddr != nil {
		t.Fatalf("expected V (via asl.RemoveBlocked) to clear SemAddr")
	}
}

func TestTerminateNonDeviceSemaphoreRebalances(t *testing.T) {
	n, a := newRunningNucleus(t)
	var sem int32

	P(n, &sem) // a blocks, sem becomes -1
	SysTerminate(n, a)
	if sem != 0 {
		t.Fatalf("expected forced removal from a non-device semaphore to rebalance its count back to 0, got %d", sem)
	}
}

func TestTerminateDeviceSemaphoreDecrementsSoftBlockCount(t *testing.T) {
	n, a := newRunningNucleus(t)
	if err := SysWaitIO(n, devices.LineDisk, 0, false); err != nil {
		t.Fatalf("unexpected WaitIO error: %v", err)
	}
	if n.SoftBlockCount != 1 {
		t.Fatalf("expected soft_block_count 1 after WaitIO blocks, got %d", n.SoftBlockCount)
	}

	SysTerminate(n, a)
	if n.SoftBlockCount != 0 {
		t.Fatalf("expected soft_block_count to drop back to 0 after terminating the blocked process, got %d", n.SoftBlockCount)
	}
	if n.DeviceSems[0] != -1 {
		t.Fatalf("expected a device semaphore's count to be left untouched by Terminate (no rebalancing), got %d", n.DeviceSems[0])
	}
}

func TestWaitIOComputesCorrectIndex(t *testing.T) {
	n, _ := newRunningNucleus(t)
	if err := SysWaitIO(n, devices.LineFlash, 2, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := devices.SemIndex(devices.LineFlash, 2)
	if n.DeviceSems[want] != -1 {
		t.Fatalf("expected WaitIO to block on device semaphore %d, got value %d", want, n.DeviceSems[want])
	}
}

func TestGetCPUTimeAccumulatesElapsed(t *testing.T) {
	n, a := newRunningNucleus(t)
	clock := n.Clock.(*devices.FakeClock)
	n.Pool.Get(a).CPUTime = 500
	n.Pool.Get(a).StartTOD = clock.Now()
	clock.Advance(250)

	var state cpuctx.State
	SysGetCPUTime(n, &state)
	if got := state.Regs[cpuctx.RegV0]; got != 750 {
		t.Fatalf("expected cpu_time + elapsed = 750, got %d", got)
	}
}

func TestGetSupportPtrReturnsCurrentProcessSupport(t *testing.T) {
	n, a := newRunningNucleus(t)
	sup := &support.Block{}
	n.Pool.Get(a).Support = sup

	if got := SysGetSupportPtr(n); got != sup {
		t.Fatalf("expected GetSupportPtr to return the current process's support block")
	}
}

func TestGetSupportPtrNilWhenUnset(t *testing.T) {
	n, _ := newRunningNucleus(t)
	if got := SysGetSupportPtr(n); got != nil {
		t.Fatalf("expected a nil support pointer by default, got %v", got)
	}
}

func TestDispatchCreateProcessSetsV0(t *testing.T) {
	n, _ := newRunningNucleus(t)
	var state cpuctx.State
	_, err := Dispatch(n, &state, CreateProcess, Args{NewState: cpuctx.State{}})
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	if state.Regs[cpuctx.RegV0] != 0 {
		t.Fatalf("expected v0 = 0 on successful CreateProcess, got %d", state.Regs[cpuctx.RegV0])
	}
}

func TestDispatchTerminateRequestsReschedule(t *testing.T) {
	n, _ := newRunningNucleus(t)
	var state cpuctx.State
	_, err := Dispatch(n, &state, Terminate, Args{})
	if !errors.Is(err, ErrReschedule) {
		t.Fatalf("expected ErrReschedule after Terminate, got %v", err)
	}
}
