package main

import (
	"fmt"

	"github.com/spf13/cobra"

	log "platconf/logger"
	"platconf/pkg/lipo"
)

var lipoCmd = &cobra.Command{
	Use:   "lipo <prefix> <suffix>",
	Short: "Merge per-architecture artifacts into a universal binary",
	Long: `Scan for artifacts named <prefix>.<arch><suffix> across the canonical
architecture list. A single match is printed as-is; two or more are merged
with the external lipo tool into <prefix>.fat<suffix>.

Example:
	platconf lipo bin/libgame .a`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, diag := lipo.Fuse(args[0], args[1])
		if diag != nil {
			log.Warn(diag.Error())
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lipoCmd)
}
