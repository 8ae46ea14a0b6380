/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sparrowqr/qrencode/internal/qrcode"
	"github.com/sparrowqr/qrencode/internal/render"
)

var eccByFlag = [4]qrcode.ECC{qrcode.Low, qrcode.Medium, qrcode.Quartile, qrcode.High}

type rootFlags struct {
	fromFile bool
	byteMode bool
	minVer   int
	eccLevel int
	format   string
	open     bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "qrencode <text-or-path> [output-path] [pixel-size]",
		Short: "Render a QR Code symbol from text",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args, &flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.fromFile, "file", "f", false, "treat the first positional argument as a file path")
	cmd.Flags().BoolVarP(&flags.byteMode, "byte", "b", false, "force byte mode, suppressing ECI detection")
	cmd.Flags().IntVarP(&flags.minVer, "min-version", "v", 1, "minimum symbol version (1-40)")
	cmd.Flags().IntVarP(&flags.eccLevel, "ecc", "e", 2, "error correction level (0=L, 1=M, 2=Q, 3=H)")
	cmd.Flags().StringVar(&flags.format, "format", "png", "output format: png, svg, or terminal")
	cmd.Flags().BoolVar(&flags.open, "open", false, "open the rendered file in the default browser")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "log encoding diagnostics to stderr")

	return cmd
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

func runEncode(cmd *cobra.Command, args []string, flags *rootFlags) error {
	log := newLogger(flags.verbose)

	text := args[0]
	if flags.fromFile {
		contents, err := os.ReadFile(text)
		if err != nil {
			return fmt.Errorf("qrencode: reading input file: %w", err)
		}
		log.Debug().Str("path", text).Int("bytes", len(contents)).Msg("read input file")
		text = string(contents)
	}

	outputPath := "qr_code.png"
	if len(args) >= 2 {
		outputPath = args[1]
	}

	pixelSize := 5
	if len(args) >= 3 {
		n, err := parsePixelSize(args[2])
		if err != nil {
			return err
		}
		pixelSize = n
	}

	if flags.eccLevel < 0 || flags.eccLevel > 3 {
		return fmt.Errorf("qrencode: ecc level must be 0-3, got %d", flags.eccLevel)
	}
	if flags.minVer < int(qrcode.MinVersion) || flags.minVer > int(qrcode.MaxVersion) {
		return fmt.Errorf("qrencode: min-version must be 1-40, got %d", flags.minVer)
	}

	opts := qrcode.Options{
		ECC:        eccByFlag[flags.eccLevel],
		MinVersion: qrcode.Version(flags.minVer),
		ForceByte:  flags.byteMode,
	}

	log.Debug().Str("ecc", opts.ECC.String()).Int("min_version", flags.minVer).Bool("force_byte", flags.byteMode).Msg("encoding")

	result, err := qrcode.Encode(text, opts)
	if err != nil {
		return fmt.Errorf("qrencode: %w", err)
	}

	log.Info().Int("version", int(result.Version)).Str("ecc", result.ECC.String()).Int("mask", int(result.Mask)).Msg("encoded symbol")

	format := strings.ToLower(flags.format)
	if err := writeOutput(result, format, outputPath, pixelSize); err != nil {
		return err
	}

	if format == "terminal" {
		return nil
	}

	if flags.open {
		if err := browser.OpenFile(outputPath); err != nil {
			log.Warn().Err(err).Msg("could not open rendered output in browser")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (version %d, %s)\n", outputPath, result.Version, result.ECC)
	return nil
}

func writeOutput(result *qrcode.Result, format, outputPath string, pixelSize int) error {
	switch format {
	case "png":
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("qrencode: creating output file: %w", err)
		}
		defer f.Close()
		if err := render.WritePNG(f, result, pixelSize); err != nil {
			return fmt.Errorf("qrencode: rendering png: %w", err)
		}
		return nil
	case "svg":
		svg, err := render.ToSVGString(result, 4)
		if err != nil {
			return fmt.Errorf("qrencode: rendering svg: %w", err)
		}
		if err := os.WriteFile(outputPath, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("qrencode: writing output file: %w", err)
		}
		return nil
	case "terminal":
		fmt.Print(render.ToTerminalString(result))
		return nil
	default:
		return fmt.Errorf("qrencode: unknown format %q (want png, svg, or terminal)", format)
	}
}

func parsePixelSize(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 1 {
		return 0, fmt.Errorf("qrencode: pixel-size must be a positive integer, got %q", s)
	}
	return n, nil
}
