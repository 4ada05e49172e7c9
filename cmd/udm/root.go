package main

import (
	"github.com/spf13/cobra"
)

type UDM struct {
}

func (u *UDM) Customize(cmd *cobra.Command) {
	cmd.Use = "udm"
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceUsage = true
	cmd.AddCommand(NewGet(u))
	cmd.AddCommand(NewSet(u))
	cmd.AddCommand(NewMerge(u))
}

func (u *UDM) Run(cmd *cobra.Command, args []string) error {
	return cmd.Usage()
}
