package main

import (
	"github.com/acorn-io/cmd"
	"github.com/grauwen/utl-x-sub010/pkg/builtin"
	"github.com/grauwen/utl-x-sub010/pkg/value"
	"github.com/spf13/cobra"
)

type Merge struct {
	udm *UDM
}

func NewMerge(udm *UDM) *cobra.Command {
	return cmd.Command(&Merge{udm: udm}, cobra.Command{
		Use:   "merge FILE...",
		Short: "Deep merge JSON or YAML documents left to right",
		Args:  cobra.MinimumNArgs(1),
	})
}

func (m *Merge) Run(cmd *cobra.Command, args []string) error {
	docs := make(value.Array, 0, len(args))
	for _, name := range args {
		root, err := readValue(name)
		if err != nil {
			return err
		}
		docs = append(docs, root)
	}

	result, err := builtin.Call("deepMergeAll", docs)
	if err != nil {
		return err
	}
	return printValue(result)
}
