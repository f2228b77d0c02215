package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func unpackCmd() *cobra.Command {
	var layoutPath string
	cmd := &cobra.Command{
		Use:   "unpack word",
		Short: "Split a packed word back into named fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayoutFile(layoutPath)
			if err != nil {
				return err
			}
			word, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("word %q: %w", args[0], err)
			}

			values, err := l.Unpack(word)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, v := range values {
				if v.Signed {
					fmt.Fprintf(w, "%s\t%d\t%d bits\t%#x\n", v.Name, v.Int, v.Width, v.Bits)
				} else {
					fmt.Fprintf(w, "%s\t%d\t%d bits\t%#x\n", v.Name, v.Bits, v.Width, v.Bits)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "YAML layout file")
	return cmd
}
