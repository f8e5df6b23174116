package cmd

import (
	"fmt"

	"github.com/marsimaging/vicar"
	"github.com/spf13/cobra"
)

var (
	extractOutput   string
	extractDetached bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <image-or-label-file>",
	Short: "Decode the pixel data of a VICAR image into a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "out.png",
		"Output PNG path")
	extractCmd.Flags().BoolVar(&extractDetached, "detached", false,
		"Treat the input as a detached label referencing its image file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	var vr *vicar.VicarReader
	var err error
	if extractDetached {
		vr, err = vicar.NewVicarReaderFromDetachedLabel(args[0])
	} else {
		vr, err = vicar.NewVicarReader(args[0])
	}
	if err != nil {
		return err
	}
	defer vr.Close()

	buffer, err := vicar.NewImageBuffer(vr.Samples, vr.Lines, vr.Bands)
	if err != nil {
		return err
	}

	for line := 0; line < vr.Lines; line++ {
		for sample := 0; sample < vr.Samples; sample++ {
			for band := 0; band < vr.Bands; band++ {
				value, err := vr.GetPixelValue(line, sample, band)
				if err != nil {
					return fmt.Errorf("pixel (%d,%d,%d): %w",
						line, sample, band, err)
				}
				buffer.Put(sample, line, band, float32(value))
			}
		}
	}

	buffer.NormalizeBetween(0, 65535)
	if err := buffer.SavePNG(extractOutput); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d, %d band(s) -> %s\n",
		args[0], vr.Samples, vr.Lines, vr.Bands, extractOutput)
	return nil
}
