package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	command := NewDosectlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewDosectlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dosectl [command] [flags]",
		Short: "dosectl computes pool chemical doses offline.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.AddCommand(NewCmdCalculate())
	cmd.AddCommand(NewCmdProducts())

	return cmd
}
