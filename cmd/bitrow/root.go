package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitrow/go-bitrow/layout"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bitrow",
		Short:        "Pack and unpack bit-level protocol header rows",
		SilenceUsage: true,
	}
	cmd.AddCommand(packCmd(), unpackCmd(), showCmd())
	return cmd
}

func loadLayoutFile(path string) (*layout.Layout, error) {
	if path == "" {
		return nil, fmt.Errorf("a layout file is required (-l)")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return layout.Load(f)
}
