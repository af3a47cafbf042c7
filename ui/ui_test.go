package ui

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/harisiqbal10/pandos-phase2/devices"
	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/pcb"
)

type fakeBus struct{}

func (fakeBus) Pending(line int) uint32                    { return 0 }
func (fakeBus) Device(line, dev int) *devices.Registers     { return &devices.Registers{} }
func (fakeBus) Terminal(dev int) *devices.TerminalRegisters { return &devices.TerminalRegisters{} }

func newTestNucleus(t *testing.T) (*kernel.Nucleus, pcb.Index, pcb.Index) {
	t.Helper()
	n := kernel.NewNucleus(fakeBus{}, devices.NewFakeClock())
	parent, _ := n.Pool.Alloc()
	n.Current = parent
	child, _ := n.Pool.Alloc()
	pcb.InsertChild(n.Pool, parent, child)
	return n, parent, child
}

func TestHandleAllProcessesListsEveryPCB(t *testing.T) {
	n, parent, child := newTestNucleus(t)
	u := New(n, "")

	rr := httptest.NewRecorder()
	u.handleAllProcesses(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "pandos nucleus status") {
		t.Fatalf("expected the page to carry the shared header")
	}
	for _, idx := range []pcb.Index{parent, child} {
		if !strings.Contains(rr.Body.String(), `href="process/`+strconv.Itoa(int(idx))+`"`) {
			t.Fatalf("expected a row linking pcb %d, got: %s", idx, rr.Body.String())
		}
	}
}

func TestHandleProcessDetailsUnknownPIDFails(t *testing.T) {
	n, _, _ := newTestNucleus(t)
	u := New(n, "")

	rr := httptest.NewRecorder()
	u.handleProcessDetails(rr, httptest.NewRequest(http.MethodGet, processesPath+"99", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for an unknown pid, got %d", rr.Code)
	}
}

func TestHandleProcessDetailsKnownPIDSucceeds(t *testing.T) {
	n, parent, _ := newTestNucleus(t)
	u := New(n, "")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, processesPath+strconv.Itoa(int(parent)), nil)
	u.handleProcessDetails(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleProcessTreeWalksToRoot(t *testing.T) {
	n, parent, child := newTestNucleus(t)
	u := New(n, "")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, processesTreePath+strconv.Itoa(int(child)), nil)
	u.handleProcessTree(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, strconv.Itoa(int(parent))) || !strings.Contains(body, strconv.Itoa(int(child))) {
		t.Fatalf("expected the tree view to mention both pcbs, got: %s", body)
	}
}
