package detect

import (
	"errors"
	"fmt"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/selector"
	"github.com/jpnorenam/cpuid-snap/pkg/types"
	"github.com/spf13/cobra"
)

type listLevelsCommand struct {
	*common.Context
}

func ListLevelsCommand(ctx *common.Context) *cobra.Command {
	var cmd listLevelsCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "list-levels",
		Short:             "List x86-64 microarchitecture levels",
		Long:              "List the x86-64 microarchitecture levels and mark the highest one the processor supports with \"*\"",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *listLevelsCommand) run(_ *cobra.Command, _ []string) error {
	hwInfo, err := cmd.Cache.GetMachineInfo(false)
	if err != nil {
		return fmt.Errorf("error getting machine info: %w", err)
	}

	rows, err := levelRows(hwInfo)
	if err != nil {
		return err
	}

	return printTable([]string{"level", "description", "compat"}, rows)
}

func levelRows(hwInfo *types.HwInfo) ([][]string, error) {
	scoredLevels, err := selector.ScoreProfiles(hwInfo, selector.MicroarchitectureLevels())
	if err != nil {
		return nil, fmt.Errorf("error scoring levels: %v", err)
	}

	topLevel, err := selector.TopProfile(scoredLevels)
	if err != nil && !errors.Is(err, selector.ErrorNoCompatibleProfile) {
		return nil, err
	}

	var rows [][]string
	for _, level := range scoredLevels {
		name := level.Name
		// Mark the supported level with "*"
		if topLevel != nil && level.Name == topLevel.Name {
			name += "*"
		}
		rows = append(rows, []string{name, level.Description, yesNo(level.Compatible)})
	}
	return rows, nil
}
