package config

import (
	"fmt"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type getCommand struct {
	*common.Context
}

func GetCommand(ctx *common.Context) *cobra.Command {
	var cmd getCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "get [<key>]",
		Short:             "Print configurations",
		Long:              "Print one or more configurations",
		GroupID:           groupID,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cmd.completeKeys,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *getCommand) run(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.getValues()
	} else {
		return cmd.getValue(args[0])
	}
}

func (cmd *getCommand) getValue(key string) error {
	value, err := cmd.Config.Get(key)
	if err != nil {
		return fmt.Errorf("error getting value of %q: %v", key, err)
	}

	if len(value) == 0 {
		return fmt.Errorf("no value set for key %q", key)
	}

	if len(value) == 1 && value[key] != nil {
		fmt.Println(value[key])
	} else {
		// print as yaml
		yamlOutput, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("error serializing value: %v", err)
		}
		fmt.Printf("%s", yamlOutput) // the yaml output ends with a newline
	}

	return nil
}

func (cmd *getCommand) getValues() error {
	values, err := cmd.Config.GetAll()
	if err != nil {
		return fmt.Errorf("error getting values: %v", err)
	}

	yamlOutput, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error serializing values: %v", err)
	}
	fmt.Printf("%s", yamlOutput) // the yaml output ends with a newline

	return nil
}

func (cmd *getCommand) completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	// Completion may run before the config backend is chosen
	values := storage.Defaults
	if cmd.Config != nil {
		var err error
		values, err = cmd.Config.GetAll()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	var keys []string
	for k := range values {
		keys = append(keys, k)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
