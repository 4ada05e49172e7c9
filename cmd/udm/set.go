package main

import (
	"github.com/acorn-io/cmd"
	udm "github.com/grauwen/utl-x-sub010"
	"github.com/grauwen/utl-x-sub010/pkg/builtin"
	"github.com/grauwen/utl-x-sub010/pkg/value"
	"github.com/spf13/cobra"
)

type Set struct {
	udm *UDM
}

func NewSet(udm *UDM) *cobra.Command {
	return cmd.Command(&Set{udm: udm}, cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Write a JSON value at a dotted path, printing the new document",
		Args:  cobra.ExactArgs(3),
	})
}

func (s *Set) Run(cmd *cobra.Command, args []string) error {
	root, err := readValue(args[0])
	if err != nil {
		return err
	}

	var newValue value.Value
	if err := udm.Unmarshal([]byte(args[2]), &newValue); err != nil {
		return err
	}

	result, err := builtin.Call("setPath", root, value.String(args[1]), newValue)
	if err != nil {
		return err
	}
	return printValue(result)
}
