package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/harisiqbal10/pandos-phase2/plib"
)

func TestResolveOutputTypeDefaultsToTable(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(outputFlag, "table", "")
	if got := resolveOutputType(fs); got != tableOut {
		t.Fatalf("expected tableOut, got %v", got)
	}
}

func TestResolveOutputTypeHonorsJSON(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(outputFlag, "table", "")
	fs.Set(outputFlag, "json")
	if got := resolveOutputType(fs); got != jsonOut {
		t.Fatalf("expected jsonOut, got %v", got)
	}
}

func TestCreateProcessListOutputJSON(t *testing.T) {
	ps := plib.Processes{1: {ID: 1, ParentID: -1, State: plib.StateRunning, CPUTime: 7}}
	out := createProcessListOutput(ps, pandosOpts{outType: jsonOut})
	if !strings.Contains(string(out), `"CPUTime": 7`) {
		t.Fatalf("expected json output to include cpu time, got: %s", out)
	}
}

func TestCreateProcessTableIncludesHeader(t *testing.T) {
	ps := plib.Processes{1: {ID: 1, ParentID: -1, State: plib.StateReady}}
	out := createProcessTable(ps)
	if !strings.Contains(string(out), "PID") {
		t.Fatalf("expected a table header, got: %s", out)
	}
}

func TestCreateSemListOutputJSON(t *testing.T) {
	sems := []semSnapshot{{Index: 0, Value: 1, Active: false}}
	out := createSemListOutput(sems, pandosOpts{outType: jsonOut})
	if !strings.Contains(string(out), `"active": false`) {
		t.Fatalf("expected json semaphore output, got: %s", out)
	}
}
