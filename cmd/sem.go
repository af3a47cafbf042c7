package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runSem(cmd *cobra.Command, args []string) {
	opts := newOptions(cmd.Flags())
	snap, err := readSnapshot(opts.snapshotPath)
	if err != nil {
		outputErrorAndFail(fmt.Sprintf("sem failed: %s", err))
	}
	output(createSemListOutput(snap.Semaphores, opts))
}
