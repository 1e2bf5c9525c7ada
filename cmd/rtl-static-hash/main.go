// Command rtl-static-hash builds the packed, perfect-hash lookup table
// described in spec.md from a plain-text symbol list: one CRC-cascade
// assignment per symbol, consumable directly by a downstream (typically
// hardware) lookup engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/QianfengClarkShen/rtl-static-hash/internal/hasher"
	"github.com/QianfengClarkShen/rtl-static-hash/internal/symbolsource"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		maxIDs    int
		format    string
		outputBin string
		outputTxt string
	)

	cmd := &cobra.Command{
		Use:          "rtl-static-hash <input-file>",
		Short:        "Build a cascade-of-CRCs perfect-hash table for a symbol list",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], maxIDs, symbolsource.Format(format), outputBin, outputTxt)
		},
	}

	cmd.Flags().IntVar(&maxIDs, "max-ids", 32768, "maximum number of IDs to support; determines the CRC width")
	cmd.Flags().StringVarP(&format, "format", "f", "ascii", "input format: ascii or hex")
	cmd.Flags().StringVar(&outputBin, "output-bin", "result.bin", "output file for the packed binary table")
	cmd.Flags().StringVar(&outputTxt, "output-txt", "result.txt", "output file for the human-readable table")

	return cmd
}

func run(inputPath string, maxIDs int, format symbolsource.Format, outputBin, outputTxt string) error {
	raw, labels, err := symbolsource.Read(inputPath, format)
	if err != nil {
		return err
	}

	h, err := hasher.New(maxIDs)
	if err != nil {
		return err
	}

	if err := h.Build(raw, labels); err != nil {
		return err
	}

	binFile, err := os.Create(outputBin)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputBin, err)
	}
	defer binFile.Close()
	if _, err := h.WritePacked(binFile); err != nil {
		return fmt.Errorf("writing %s: %w", outputBin, err)
	}

	txtFile, err := os.Create(outputTxt)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputTxt, err)
	}
	defer txtFile.Close()
	if err := h.WriteReadable(txtFile); err != nil {
		return fmt.Errorf("writing %s: %w", outputTxt, err)
	}

	return nil
}
