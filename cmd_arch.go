package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"platconf/errors"
	log "platconf/logger"
	"platconf/pkg/arch"
)

var archPlatform string

var archCmd = &cobra.Command{
	Use:   "arch [machine]",
	Short: "Canonicalize the host (or given) CPU architecture",
	Long: `Resolve a machine identifier to its canonical architecture name. With no
argument the host machine identifier is used; the configured arch setting,
when present, takes precedence over host detection.

With --platform the resolved architecture is also validated against the
platform's supported set; an unsupported architecture terminates with exit
status 255.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var a arch.Arch
		var diag *errors.Diag

		switch {
		case len(args) == 1:
			a, diag = arch.Resolve(args[0])
		case env.Arch != "":
			a, diag = arch.Resolve(env.Arch)
		default:
			a, diag = arch.DetectHost()
		}
		if diag != nil {
			log.Warn(diag.Error())
		}

		if archPlatform != "" {
			platform := arch.ResolvePlatformAlias(archPlatform)
			supported := arch.SupportedArches(platform)
			if supported == nil {
				return fmt.Errorf("unknown platform %q", archPlatform)
			}
			arch.MustValidate(a, platform, supported)
		}

		fmt.Println(a)
		return nil
	},
}

func init() {
	archCmd.Flags().StringVar(&archPlatform, "platform", "", "validate against this platform's supported set")
	rootCmd.AddCommand(archCmd)
}
