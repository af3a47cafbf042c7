package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func runInspect(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		return
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		outputErrorAndFail(fmt.Sprintf("please pass a valid pid (int); we received: %s", args[0]))
	}

	opts := newOptions(cmd.Flags())
	snap, err := readSnapshot(opts.snapshotPath)
	if err != nil {
		outputErrorAndFail(fmt.Sprintf("inspect failed: %s", err))
	}

	p, ok := snap.Processes[pid]
	if !ok {
		outputErrorAndFail(fmt.Sprintf("no process with pid %d in the snapshot", pid))
	}
	output(createProcessSingleOutput(p, opts))
}
