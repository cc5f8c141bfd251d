package main

import (
	"fmt"

	"github.com/spf13/cobra"

	log "platconf/logger"
	"platconf/pkg/endian"
)

var endianCmd = &cobra.Command{
	Use:   "endian",
	Short: "Probe the configured compiler for target byte order",
	Long: `Run the configured C compiler in preprocess-only mode against a byte-order
probe and print "big" or "little". An inconclusive or failed probe prints
"little" with a warning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		big, diag := endian.DetectTarget(env.Compiler())
		if diag != nil {
			log.Warn(diag.Error())
		}
		if big {
			fmt.Println("big")
		} else {
			fmt.Println("little")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endianCmd)
}
