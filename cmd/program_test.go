package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harisiqbal10/pandos-phase2/devices"
)

func TestLoadProgramParsesStepsAndSyscalls(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.json")
	contents := `{
		"entry_pc": 4096,
		"stack_pointer": 8192,
		"steps": [
			{"exc_code": 8, "syscall": {"number": 6}}
		]
	}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed writing fixture: %v", err)
	}

	prog, err := loadProgram(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prog.EntryPC != 4096 || prog.StackP != 8192 {
		t.Fatalf("expected entry/stack to round-trip, got %+v", prog)
	}
	if len(prog.Steps) != 1 || prog.Steps[0].Syscall == nil || prog.Steps[0].Syscall.Number != 6 {
		t.Fatalf("expected one syscall step with number 6, got %+v", prog.Steps)
	}
}

func TestLoadProgramMissingFileFails(t *testing.T) {
	if _, err := loadProgram("/nonexistent/path/to/image.json"); err == nil {
		t.Fatalf("expected an error for a missing program image")
	}
}

func TestScriptedCallResolveArgsBindsSemIndex(t *testing.T) {
	var sems [devices.NumSemaphores]int32
	sems[3] = 42

	sc := scriptedCall{Number: 3, SemIndex: 3}
	args := sc.resolveArgs(&sems)
	if args.SemAddr == nil || *args.SemAddr != 42 {
		t.Fatalf("expected resolved args to point at sem index 3, got %+v", args)
	}
}

func TestScriptedCallResolveArgsOutOfRangeLeavesNilSem(t *testing.T) {
	var sems [devices.NumSemaphores]int32
	sc := scriptedCall{Number: 5, SemIndex: -1}
	args := sc.resolveArgs(&sems)
	if args.SemAddr != nil {
		t.Fatalf("expected no semaphore address for an out-of-range index")
	}
}
