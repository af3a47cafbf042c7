// Package ui is a minimal HTTP dashboard over a running nucleus: a process
// table, a detail view, and a parent-chain tree view, read straight off the
// PCB arena through plib on every request.
package ui

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/harisiqbal10/pandos-phase2/kernel"
	"github.com/harisiqbal10/pandos-phase2/plib"
)

const (
	defaultAddr       = ":8080"
	processesPath     = "/process/"
	processesTreePath = "/tree/"
)

// UI serves process-table pages backed by a live nucleus. There is no
// refresh cache to lock around: the PCB arena is read fresh on every
// request, so the nucleus's pool is always the source of truth.
type UI struct {
	inspector plib.Inspector
	addr      string
}

// Data is the template context for the all-processes view.
type Data struct {
	PS plib.Processes
}

// DetailKV is one row of the process-detail table.
type DetailKV struct {
	Field string
	Value string
}

// New returns a UI serving addr and reading processes from n. An empty addr
// falls back to defaultAddr.
func New(n *kernel.Nucleus, addr string) *UI {
	if addr == "" {
		addr = defaultAddr
	}
	return &UI{
		inspector: plib.NewNucleusInspector(n),
		addr:      addr,
	}
}

// RunUI blocks serving the dashboard until the listener fails.
func (ui *UI) RunUI() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ui.handleAllProcesses)
	mux.HandleFunc(processesPath, ui.handleProcessDetails)
	mux.HandleFunc(processesTreePath, ui.handleProcessTree)

	log.Printf("pandos ui: serving at %s", ui.addr)
	return http.ListenAndServe(ui.addr, mux)
}

func (ui *UI) handleAllProcesses(w http.ResponseWriter, r *http.Request) {
	ps, err := ui.inspector.GetProcesses()
	if err != nil {
		writeFailure(w, err)
		return
	}
	t, err := createTemplate(allProcessesView)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := t.Execute(w, Data{PS: ps}); err != nil {
		writeFailure(w, err)
	}
}

func (ui *UI) handleProcessDetails(w http.ResponseWriter, r *http.Request) {
	pid, err := pidFromPath(r.URL.Path, processesPath)
	if err != nil {
		writeFailure(w, err)
		return
	}
	ps, err := ui.inspector.GetProcesses()
	if err != nil {
		writeFailure(w, err)
		return
	}
	process, ok := ps[pid]
	if !ok {
		writeFailure(w, fmt.Errorf("process %d does not exist", pid))
		return
	}
	t, err := createTemplate(viewProcessDetails)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := t.Execute(w, process); err != nil {
		writeFailure(w, err)
	}
}

func (ui *UI) handleProcessTree(w http.ResponseWriter, r *http.Request) {
	pid, err := pidFromPath(r.URL.Path, processesTreePath)
	if err != nil {
		writeFailure(w, err)
		return
	}
	ps, err := ui.inspector.GetProcesses()
	if err != nil {
		writeFailure(w, err)
		return
	}
	if _, ok := ps[pid]; !ok {
		writeFailure(w, fmt.Errorf("process %d does not exist", pid))
		return
	}

	hierarchy := getProcessHierarchy(ps, pid)
	t, err := createTemplate(viewTreeDetails)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := t.Execute(w, hierarchy); err != nil {
		writeFailure(w, err)
	}
}

func pidFromPath(path, prefix string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(path, prefix))
}

// getProcessDetails returns a slice containing the key and value for each
// field of a [plib.Process], by reflection.
func getProcessDetails(process plib.Process) []DetailKV {
	result := []DetailKV{}
	t := reflect.TypeOf(process)
	v := reflect.ValueOf(process)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		result = append(result, DetailKV{field.Name, fmt.Sprintf("%v", v.Field(i).Interface())})
	}
	return result
}

// getProcessHierarchy returns processes starting with pid and walking up to
// the root via ParentID, most-child first.
func getProcessHierarchy(processes plib.Processes, pid int) []plib.Process {
	result := []plib.Process{}

	current := *processes[pid]
	for {
		result = append(result, current)
		parent, ok := processes[current.ParentID]
		if !ok {
			break
		}
		current = *parent
	}

	return result
}

// createTemplate wraps temp in the shared page header and footer.
func createTemplate(temp string) (*template.Template, error) {
	t, err := template.New("response").
		Funcs(template.FuncMap{"pDeets": getProcessDetails}).
		Parse(uiHeader + temp + uiFooter)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func writeFailure(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	t, tErr := createTemplate(errorView)
	if tErr != nil {
		return
	}
	t.Execute(w, err.Error())
}
