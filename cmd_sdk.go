package main

import (
	"fmt"

	"github.com/spf13/cobra"

	log "platconf/logger"
	"platconf/pkg/mvk"
)

var sdkOSName string

var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Locate the MoltenVK library for a target OS",
	Long: `Search for a usable MoltenVK xcframework: the configured override path
first, then the highest qualifying installation under ~/VulkanSDK, then the
system install prefixes. Prints the winning directory, or an empty line when
nothing qualifies.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, diag := mvk.Detect(env, sdkOSName)
		if diag != nil {
			log.Warn(diag.Error())
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	sdkCmd.Flags().StringVar(&sdkOSName, "os", "macos", "target OS name inside the xcframework")
	rootCmd.AddCommand(sdkCmd)
}
