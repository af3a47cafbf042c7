package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"

	"github.com/harisiqbal10/pandos-phase2/plib"
)

func newOptions(fs *pflag.FlagSet) pandosOpts {
	trace, _ := fs.GetBool(traceFlag)
	snap, _ := fs.GetString(snapshotFlag)
	return pandosOpts{
		outType:      resolveOutputType(fs),
		trace:        trace,
		snapshotPath: snap,
	}
}

func resolveOutputType(fs *pflag.FlagSet) outputType {
	of, err := fs.GetString(outputFlag)
	if err != nil {
		return tableOut
	}
	switch of {
	case "json":
		return jsonOut
	default:
		return tableOut
	}
}

func output(out []byte) {
	fmt.Printf("%s", out)
}

func outputErrorAndFail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func createProcessListOutput(ps plib.Processes, opts pandosOpts) []byte {
	if opts.outType == jsonOut {
		out, _ := json.MarshalIndent(ps, "", "  ")
		return out
	}
	return createProcessTable(ps)
}

func createProcessSingleOutput(p *plib.Process, opts pandosOpts) []byte {
	if p == nil {
		return []byte{}
	}
	if opts.outType == jsonOut {
		out, _ := json.MarshalIndent(p, "", "  ")
		return out
	}
	return createProcessTable(plib.Processes{p.ID: p})
}

func createProcessTable(ps plib.Processes) []byte {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"PID", "state", "parent", "cpu time (us)", "semaphore", "support"})
	for _, p := range ps {
		table.Append([]string{
			strconv.Itoa(p.ID),
			string(p.State),
			strconv.Itoa(p.ParentID),
			strconv.FormatUint(p.CPUTime, 10),
			strconv.FormatBool(p.HasSemaphore),
			strconv.FormatBool(p.HasSupport),
		})
	}
	table.Render()
	return buf.Bytes()
}

func createSemListOutput(sems []semSnapshot, opts pandosOpts) []byte {
	if opts.outType == jsonOut {
		out, _ := json.MarshalIndent(sems, "", "  ")
		return out
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"index", "value", "active"})
	for _, s := range sems {
		table.Append([]string{
			strconv.Itoa(s.Index),
			strconv.Itoa(int(s.Value)),
			strconv.FormatBool(s.Active),
		})
	}
	table.Render()
	return buf.Bytes()
}
