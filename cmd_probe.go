package main

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"

	"platconf/errors"
	log "platconf/logger"
	"platconf/pkg/arch"
	"platconf/pkg/endian"
	"platconf/pkg/mvk"
)

var probeOSName string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run every platform probe and print a fact report",
	Long: `Resolve all configure-phase facts in one pass: host description, canonical
architecture (validated when a platform is configured), MoltenVK location,
and target byte order. Facts print as key = value lines; accumulated
warnings are reported once at the end.

Probes run sequentially on one thread; the surrounding build orchestration
cannot tolerate process-level parallelism in this phase.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var diags []*errors.Diag

		if info, err := host.Info(); err == nil {
			fmt.Printf("host = %s %s (%s)\n", info.OS, info.KernelVersion, info.KernelArch)
		} else {
			log.Debugf("host description unavailable: %v", err)
		}

		var a arch.Arch
		var diag *errors.Diag
		if env.Arch != "" {
			a, diag = arch.Resolve(env.Arch)
		} else {
			a, diag = arch.DetectHost()
		}
		diags = append(diags, diag)

		platform := arch.ResolvePlatformAlias(env.Platform)
		if platform != "" {
			if supported := arch.SupportedArches(platform); supported != nil {
				arch.MustValidate(a, platform, supported)
			} else {
				diags = append(diags, errors.Warnf("probe", "unknown platform %q, skipping validation", env.Platform))
			}
			fmt.Printf("platform = %s\n", platform)
		}
		fmt.Printf("arch = %s\n", a)

		sdk, diag := mvk.Detect(env, probeOSName)
		diags = append(diags, diag)
		fmt.Printf("mvk_sdk = %s\n", sdk)

		big, diag := endian.DetectTarget(env.Compiler())
		diags = append(diags, diag)
		if big {
			fmt.Println("endian = big")
		} else {
			fmt.Println("endian = little")
		}

		if err := errors.Collect(diags...); err != nil {
			log.Warnf("configure completed with warnings:\n%v", err)
		}
		return nil
	},
}

func init() {
	probeCmd.Flags().StringVar(&probeOSName, "os", "macos", "target OS name for the MoltenVK search")
	rootCmd.AddCommand(probeCmd)
}
