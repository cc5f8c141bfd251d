package main

import (
	"os"

	"github.com/spf13/cobra"

	defs "platconf/definitions"
	log "platconf/logger"
	"platconf/pkg/buildenv"
)

// Version injected in Makefile.
var Version = "dev"

var (
	confFile string
	debugLog bool

	// env carries the configure settings for the invoked subcommand,
	// resolved once before any probe runs.
	env *buildenv.Env
)

var rootCmd = &cobra.Command{
	Use:   "platconf",
	Short: "platconf - resolve build-time platform facts for multi-target native builds",
	Long: `platconf answers the questions a build configuration pass asks once per
target: the canonical host CPU architecture, where the Vulkan/MoltenVK SDK
lives, the merged universal binary for a set of per-architecture artifacts,
and whether the target compiler is big-endian.

Each answer is printed on stdout; warnings go to stderr so output stays
machine-readable. Probes run sequentially and never retry.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(&log.Config{Debug: debugLog}); err != nil {
			return err
		}

		if confFile == "" {
			confFile = os.Getenv(defs.ConfEnv)
		}
		loaded, err := buildenv.Load(confFile)
		if err != nil {
			return err
		}
		env = loaded
		log.Pretty("configure environment: %v", env)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&confFile, "config", "", "INI configuration file ([build] section)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")
}
