package main

import (
	"fmt"
	"os"

	"github.com/harisiqbal10/pandos-phase2/cmd"
)

func main() {
	pandosCmd := cmd.SetupCLI()
	if err := pandosCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
