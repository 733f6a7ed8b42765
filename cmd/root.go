package main

import (
	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{Use: "newspulse"}

	root.AddCommand(runCMD())
	_ = root.Execute()
}
