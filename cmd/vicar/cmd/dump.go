package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/marsimaging/vicar"
	"github.com/spf13/cobra"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump <label-file>",
	Short: "Parse a PVL label and print it",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text",
		"Output format: text, json or yaml")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	pvl, err := vicar.LoadPvl(args[0])
	if err != nil {
		return err
	}

	switch dumpFormat {
	case "text":
		vicar.PrintPvl(pvl)
	case "json":
		serialized, err := json.MarshalIndent(pvl.AsDict(), "", " ")
		if err != nil {
			return err
		}
		fmt.Println(string(serialized))
	case "yaml":
		out, err := pvl.AsYaml()
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unknown output format %q", dumpFormat)
	}
	return nil
}
