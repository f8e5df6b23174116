package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vicar",
	Short: "Inspect PVL labels and VICAR image files",
	Long: `vicar parses PVL (Parameter Value Language) labels and VICAR
formatted planetary image products.

Labels can be dumped as text, JSON or YAML, and image files can be
extracted to PNG, whether the label is embedded in the image file or
detached alongside it.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
