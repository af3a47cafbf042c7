package syscalls

import (
	"github.com/harisiqbal10/pandos-phase2/cpuctx"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/support"
)

// SysGetCPUTime implements syscall 6 (§4.5 point 6): cpu_time plus the
// elapsed time since the process last became current.
func SysGetCPUTime(n *kernel.Nucleus, state *cpuctx.State) {
	p := n.Pool.Get(n.Current)
	now := n.Clock.Now()
	state.SetV0(uint32(p.CPUTime + (now - p.StartTOD)))
}

// SysGetSupportPtr implements syscall 8 (§4.5 point 8): return the current
// process's support structure, or nil if it has none.
func SysGetSupportPtr(n *kernel.Nucleus) *support.Block {
	p := n.Pool.Get(n.Current)
	sup, _ := p.Support.(*support.Block)
	return sup
}
