package detect

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

type listFeaturesCommand struct {
	*common.Context

	// flags
	supportedOnly bool
}

func ListFeaturesCommand(ctx *common.Context) *cobra.Command {
	var cmd listFeaturesCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "list-features",
		Short:             "List CPU features",
		Long:              "List every feature libcpuid recognises and whether the processor supports it",
		GroupID:           groupID,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().BoolVar(&cmd.supportedOnly, "supported", false, "only list supported features")

	return cobraCmd
}

func (cmd *listFeaturesCommand) run(_ *cobra.Command, _ []string) error {
	info, err := cmd.Detector.Identify()
	if err != nil {
		return fmt.Errorf("cpuid error: %w", err)
	}

	rows := featureRows(info, cmd.supportedOnly)
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No features found.")
		return nil
	}

	return printTable([]string{"feature", "description", "supported"}, rows)
}

func featureRows(info cpuid.CpuInfo, supportedOnly bool) [][]string {
	var rows [][]string
	for _, feature := range cpuid.AllFeatures() {
		supported := info.HasFeature(feature)
		if supportedOnly && !supported {
			continue
		}
		rows = append(rows, []string{feature.String(), feature.Description(), yesNo(supported)})
	}
	return rows
}

// printTable renders rows in a borderless table with a bold header. The
// middle column wraps to keep the table within 80 characters.
func printTable(header []string, rows [][]string) error {
	var firstMaxLen int
	for _, row := range rows {
		firstMaxLen = max(firstMaxLen, len(row[0]))
	}

	tableMaxWidth := 80
	// Increase column widths to account for paddings
	firstMaxLen += 1
	// Middle column fills the remaining space, minus the last column
	middleMaxLen := tableMaxWidth - firstMaxLen - len(header[2]) - 2

	padding := tw.CellPadding{
		PerColumn: []tw.Padding{
			{Overwrite: true, Right: " "},
			{Overwrite: true, Left: " ", Right: " "},
			{Overwrite: true},
		},
	}

	options := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewColorized(renderer.ColorizedConfig{
			Header: renderer.Tint{
				FG: renderer.Colors{color.Bold}, // Bold headers
			},
			Column: renderer.Tint{
				FG: renderer.Colors{color.Reset},
				BG: renderer.Colors{color.Reset},
			},
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off, ShowFooter: tw.Off, BetweenRows: tw.Off, BetweenColumns: tw.Off},
				Lines: tw.Lines{
					ShowTop:        tw.Off,
					ShowBottom:     tw.Off,
					ShowHeaderLine: tw.Off,
					ShowFooterLine: tw.Off,
				},
				CompactMode: tw.On,
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			MaxWidth: tableMaxWidth,
			Widths: tw.CellWidth{
				PerColumn: tw.Mapper[int, int]{
					0: firstMaxLen,
					1: middleMaxLen,
				},
			},
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
				Padding:   padding,
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapTruncate},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Padding:    padding,
			},
		}),
	}

	table := tablewriter.NewTable(os.Stdout, options...)
	table.Header(header)
	err := table.Bulk(rows)
	if err != nil {
		return fmt.Errorf("error adding data to table: %v", err)
	}
	err = table.Render()
	if err != nil {
		return fmt.Errorf("error rendering table: %v", err)
	}
	return nil
}
