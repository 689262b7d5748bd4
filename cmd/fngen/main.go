// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fngen renders the generated operation families of the fn and seg
// packages. It is normally invoked through go generate from the repository
// root; --check makes it verify the committed files instead of rewriting
// them.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"code.hybscloud.com/fn/internal/gen"
)

var rootCmd = &cobra.Command{
	Use:   "fngen [flags]",
	Short: "Regenerate the fn and seg operation families.",
	Long: `Render the predicate, consumer, and function families of the fn and seg
packages from the templates in internal/gen/templates. The rendered files
are committed; --check reports committed files that no longer match the
templates without rewriting anything.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		root := getString(cmd, "root")
		if getFlag(cmd, "check") {
			stale, err := gen.Check(root)
			if err != nil {
				log.Fatal(err)
			}
			if len(stale) > 0 {
				for _, f := range stale {
					log.Errorf("stale generated file: %s", f)
				}
				os.Exit(1)
			}
			log.Info("generated files are current")
			return
		}
		if err := gen.Run(root); err != nil {
			log.Fatal(err)
		}
	},
}

// Get an expected bool flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func init() {
	rootCmd.Flags().Bool("check", false, "verify committed generated files instead of rewriting them")
	rootCmd.Flags().String("root", ".", "repository root containing the generated packages")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
