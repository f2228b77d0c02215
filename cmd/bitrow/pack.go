package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func packCmd() *cobra.Command {
	var (
		layoutPath string
		asBinary   bool
	)
	cmd := &cobra.Command{
		Use:   "pack name=value ...",
		Short: "Pack named field values into one word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayoutFile(layoutPath)
			if err != nil {
				return err
			}

			values := make(map[string]uint64, len(args))
			for _, arg := range args {
				name, raw, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("argument %q is not name=value", arg)
				}
				v, err := parseFieldValue(raw)
				if err != nil {
					return fmt.Errorf("field %q: %w", name, err)
				}
				values[name] = v
			}

			word, err := l.Pack(values)
			if err != nil {
				return err
			}
			if asBinary {
				fmt.Fprintf(cmd.OutOrStdout(), "0b%0*b\n", int(l.TotalWidth()), word)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "0x%0*x\n", int(l.Word/4), word)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "YAML layout file")
	cmd.Flags().BoolVarP(&asBinary, "binary", "b", false, "print the packed word in binary")
	return cmd
}

// parseFieldValue accepts decimal, 0x and 0b forms; a leading minus means
// a signed field value, carried through on its two's-complement pattern.
func parseFieldValue(raw string) (uint64, error) {
	if strings.HasPrefix(raw, "-") {
		iv, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return 0, err
		}
		return uint64(iv), nil
	}
	return strconv.ParseUint(raw, 0, 64)
}
