// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/framekit/imui/font/gofont"
)

func newFontsCmd() *cobra.Command {
	var (
		size   float32
		sample string
	)
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the bundled font families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fonts := gofont.Collection()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "FAMILY\tLINE\tWIDTH")
			for _, family := range fonts.Families() {
				face, err := fonts.Face(family, size)
				if err != nil {
					return err
				}
				m := face.Measure(sample)
				face.Close()
				fmt.Fprintf(w, "%s\t%d\t%d\n", family, m.Y, m.X)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float32Var(&size, "size", 20, "pixel size")
	cmd.Flags().StringVar(&sample, "sample", "The quick brown fox", "text to measure")
	return cmd
}
