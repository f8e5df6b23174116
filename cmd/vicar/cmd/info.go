package cmd

import (
	"fmt"

	"github.com/marsimaging/vicar"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <image-file>",
	Short: "Show the resolved geometry of an embedded VICAR label",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	vr, err := vicar.NewVicarReader(args[0])
	if err != nil {
		return err
	}
	defer vr.Close()

	label := vr.Label()
	for _, key := range label.Keys() {
		value, _ := label.Get(key)
		fmt.Printf("%-10s %v\n", key, value)
	}
	return nil
}
