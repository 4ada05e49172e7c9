package main

import (
	"fmt"
	"os"

	"github.com/acorn-io/cmd"
	udm "github.com/grauwen/utl-x-sub010"
	"github.com/grauwen/utl-x-sub010/pkg/builtin"
	"github.com/grauwen/utl-x-sub010/pkg/value"
	"github.com/spf13/cobra"
)

type Get struct {
	udm *UDM

	Default string `usage:"JSON value returned when the path is missing" short:"d"`
}

func NewGet(udm *UDM) *cobra.Command {
	return cmd.Command(&Get{udm: udm}, cobra.Command{
		Use:   "get FILE PATH",
		Short: "Read the value at a dotted path in a JSON or YAML document",
		Args:  cobra.ExactArgs(2),
	})
}

func (g *Get) Run(cmd *cobra.Command, args []string) error {
	root, err := readValue(args[0])
	if err != nil {
		return err
	}

	callArgs := []value.Value{root, value.String(args[1])}
	if g.Default != "" {
		var def value.Value
		if err := udm.Unmarshal([]byte(g.Default), &def); err != nil {
			return err
		}
		callArgs = append(callArgs, def)
	}

	result, err := builtin.Call("getPath", callArgs...)
	if err != nil {
		return err
	}
	return printValue(result)
}

func readValue(name string) (value.Value, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var root value.Value
	if err := udm.Unmarshal(data, &root, udm.Option{SourceName: name}); err != nil {
		return nil, err
	}
	return root, nil
}

func printValue(v value.Value) error {
	data, err := udm.MarshalIndent(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
