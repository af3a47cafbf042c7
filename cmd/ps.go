package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runPS(cmd *cobra.Command, args []string) {
	opts := newOptions(cmd.Flags())
	snap, err := readSnapshot(opts.snapshotPath)
	if err != nil {
		outputErrorAndFail(fmt.Sprintf("ps failed: %s", err))
	}
	output(createProcessListOutput(snap.Processes, opts))
}
