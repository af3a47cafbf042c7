package cmd

import "github.com/spf13/cobra"

var pandosCmd = &cobra.Command{
	Use:   "pandos",
	Short: "A command-line tool for booting and inspecting a PandOS phase 2 nucleus.",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var runCmd = &cobra.Command{
	Use:   "run [program image]",
	Short: "Boots the nucleus against a scripted program image and runs until halt, wait, or panic.",
	Run:   runRun,
}

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "Dumps the PCB table from the last run's snapshot.",
	Run:   runPS,
}

var semCmd = &cobra.Command{
	Use:   "sem",
	Short: "Dumps the device-semaphore array from the last run's snapshot.",
	Run:   runSem,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [pid]",
	Short: "Shows a single process's details from the last run's snapshot.",
	Run:   runInspect,
}

// SetupCLI constructs the cobra hierarchy for the pandos CLI.
//
// Do not use this function from other Go packages. Import the packages
// behind each subcommand directly instead, e.g. plib or kernel.
func SetupCLI() *cobra.Command {
	pandosCmd.AddCommand(runCmd)
	pandosCmd.AddCommand(psCmd)
	pandosCmd.AddCommand(semCmd)
	pandosCmd.AddCommand(inspectCmd)
	return pandosCmd
}
