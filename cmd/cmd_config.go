package cmd

type outputType int

const (
	tableOut outputType = iota
	jsonOut
)

const (
	outputFlag   = "output"
	traceFlag    = "trace"
	snapshotFlag = "snapshot"
)

// pandosOpts carries the flags every subcommand reads: a single struct
// newOptions fills from a *pflag.FlagSet rather than each command
// re-parsing its own flags inline.
type pandosOpts struct {
	outType      outputType
	trace        bool
	snapshotPath string
}

func init() {
	runCmd.Flags().Bool(traceFlag, false, "Print the PCB index of every process the scheduler dispatches.")
	runCmd.Flags().String(snapshotFlag, "", "Path to write the post-run PCB/semaphore snapshot to. Defaults to the configured snapshot directory.")

	psCmd.Flags().StringP(outputFlag, "o", "table", "Output type for command [table (default), json].")
	psCmd.Flags().String(snapshotFlag, "", "Path to read the PCB/semaphore snapshot from. Defaults to the configured snapshot directory.")

	semCmd.Flags().StringP(outputFlag, "o", "table", "Output type for command [table (default), json].")
	semCmd.Flags().String(snapshotFlag, "", "Path to read the PCB/semaphore snapshot from. Defaults to the configured snapshot directory.")

	inspectCmd.Flags().StringP(outputFlag, "o", "table", "Output type for command [table (default), json].")
	inspectCmd.Flags().String(snapshotFlag, "", "Path to read the PCB/semaphore snapshot from. Defaults to the configured snapshot directory.")
}
