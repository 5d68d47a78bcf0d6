package main

import (
	"fmt"
	"log"
	"os"

	"github.com/canonical/go-snapctl/env"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/config"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/detect"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/others"
	"github.com/jpnorenam/cpuid-snap/cmd/cli/others/debug"
	"github.com/jpnorenam/cpuid-snap/pkg/constants"
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/storage"
	"github.com/spf13/cobra"
)

func main() {
	ctx := &common.Context{
		Detector: cpuid.Default(),
	}

	// Get snap name for dynamic commands
	instanceName := env.SnapInstanceName()
	if instanceName == "" {
		instanceName = constants.SnapName
	}

	// rootCmd is the base command
	// It gets populated with subcommands
	rootCmd := &cobra.Command{
		SilenceUsage: true,
		Long: instanceName + " identifies the processor of the host machine using libcpuid.\n\n" +
			"Use this command to inspect the processor, list its features, or check it against requirements.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRunE(ctx, cmd)
		},
		Use: instanceName,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&ctx.ConfigPath, "config", "", "Read configuration from a key=value file")

	// Disable command sorting to keep commands sorted as added below
	cobra.EnableCommandSorting = false

	rootCmd.AddGroup(detect.Group("Detection Commands:"))
	rootCmd.AddCommand(
		detect.ShowCpuCommand(ctx),
		detect.ListFeaturesCommand(ctx),
		detect.CheckCommand(ctx),
		detect.ListLevelsCommand(ctx),
	)

	rootCmd.AddGroup(config.Group("Configuration Commands:"))
	rootCmd.AddCommand(
		config.GetCommand(ctx),
		config.SetCommand(ctx),
	)

	// other commands (help is added by default)
	rootCmd.AddCommand(
		others.ShowMachineCommand(ctx),
		others.DumpRawCommand(ctx),
		debug.DebugCommand(ctx),
	)

	// disable logging timestamps
	log.SetFlags(0)

	// Hide the 'completion' command from help text
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func persistentPreRunE(ctx *common.Context, cmd *cobra.Command) error {
	// get value of verbose flag
	verbose := cmd.Flags().Lookup("verbose").Value.String() == "true"
	if verbose {
		log.Println("Verbose output enabled globally.")
		if err := os.Setenv("VERBOSE", "true"); err != nil {
			return err
		}
	}

	switch {
	case ctx.ConfigPath != "":
		cfg, err := storage.NewFileConfig(ctx.ConfigPath)
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		ctx.Config = cfg
	case env.Snap() != "":
		ctx.Config = storage.NewConfig()
	default:
		ctx.Config = storage.NewMemoryConfig()
	}

	cacheEnabled, err := config.GetBool(ctx.Config, storage.KeyCacheEnabled)
	if err != nil {
		return err
	}
	if cacheEnabled {
		ctx.Cache = storage.NewCache(ctx.Detector)
	} else {
		ctx.Cache = storage.NewMockCache(ctx.Detector)
	}

	if verbose {
		log.Printf("Using %s", ctx.Detector.Version())
	}
	return nil
}
