package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitrow/go-bitrow/layout"
)

var fieldPalette = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
}

func showCmd() *cobra.Command {
	var layoutPath string
	cmd := &cobra.Command{
		Use:   "show [word]",
		Short: "Render the bit diagram of a layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayoutFile(layoutPath)
			if err != nil {
				return err
			}
			var word uint64
			if len(args) == 1 {
				word, err = strconv.ParseUint(args[0], 0, 64)
				if err != nil {
					return fmt.Errorf("word %q: %w", args[0], err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderBits(l, word))
			for i, f := range l.Fields {
				off, _ := l.Offset(f.Name)
				c := fieldPalette[i%len(fieldPalette)]
				bits := word >> off & (uint64(1)<<f.Width - 1)
				kind := "unsigned"
				if f.Signed {
					kind = "signed"
				}
				fmt.Fprintf(out, "%s  bits %d..%d  %s  %d\n",
					c.Sprintf("%-12s", f.Name), off, off+f.Width-1, kind, bits)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "YAML layout file")
	return cmd
}

// renderBits draws the row MSB first, one colored group per field.
func renderBits(l *layout.Layout, word uint64) string {
	var groups []string
	for i := len(l.Fields) - 1; i >= 0; i-- {
		f := l.Fields[i]
		off, _ := l.Offset(f.Name)
		bits := word >> off & (uint64(1)<<f.Width - 1)
		c := fieldPalette[i%len(fieldPalette)]
		groups = append(groups, c.Sprintf("%0*b", int(f.Width), bits))
	}
	if unused := l.Word - l.TotalWidth(); unused > 0 {
		groups = append([]string{strings.Repeat(".", int(unused))}, groups...)
	}
	return strings.Join(groups, " ")
}
