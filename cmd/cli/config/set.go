package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/canonical/go-snapctl/env"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/storage"
	"github.com/jpnorenam/cpuid-snap/pkg/utils"
	"github.com/spf13/cobra"
)

type setCommand struct {
	*common.Context

	// flags
	packageConfig bool
}

func SetCommand(ctx *common.Context) *cobra.Command {
	var cmd setCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "set <key=value>",
		Short:             "Set configurations",
		Long:              "Set a configuration",
		GroupID:           groupID,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	// flags
	cobraCmd.Flags().BoolVar(&cmd.packageConfig, "package", false, "set package configurations")
	err := cobraCmd.Flags().MarkHidden("package")
	if err != nil {
		panic(err)
	}

	return cobraCmd
}

func (cmd *setCommand) run(_ *cobra.Command, args []string) error {
	// snapctl set needs root; other backends are not persisted
	if env.Snap() != "" && !utils.IsRootUser() {
		return common.ErrPermissionDenied
	}
	if env.Snap() == "" && cmd.ConfigPath == "" {
		log.Println("Not running as a snap, the value is not persisted.")
	}
	return cmd.setValue(args[0])
}

func (cmd *setCommand) setValue(keyValue string) error {
	if keyValue[0] == '=' {
		return fmt.Errorf("key must not start with an equal sign")
	}

	// The value itself can contain an equal sign, so we split only on the first occurrence
	parts := strings.SplitN(keyValue, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected key=value, got %q", keyValue)
	}
	key, value := parts[0], parts[1]

	err := validateValue(key, value)
	if err != nil {
		return err
	}

	if cmd.packageConfig {
		err = cmd.Config.Set(key, value, storage.PackageConfig)
	} else {
		err = cmd.Config.Set(key, value, storage.UserConfig)
	}
	if err != nil {
		return fmt.Errorf("error setting value %q for %q: %v", value, key, err)
	}

	// A cached report may have been produced with different settings
	if key == storage.KeyClockMeasure && cmd.Cache != nil {
		if err := cmd.Cache.Clear(); err != nil {
			return err
		}
	}

	return nil
}
