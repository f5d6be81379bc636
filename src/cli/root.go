// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/helper/gc"
	pemblocks "github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/pem/blocks"
	pemclassify "github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/pem/classify"
	"github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/pem/tlsmaterial"
	"github.com/H0llyW00dzZ/tls-pem-classifier/src/logger"
)

// ErrInputFileRequired indicates that no input file was supplied.
var ErrInputFileRequired = errors.New("cli: at least one input file is required")

var (
	outputFile     string
	tableOutput    bool
	jsonOutput     bool
	tlsOptionsFile string
)

// OperationPerformed reports whether the last Execute call ran a
// classification, so the caller can distinguish real work from help or
// version output.
var OperationPerformed bool

// Execute runs the root command. Input files are positional arguments;
// their objects are concatenated in argument order before
// classification.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false

	rootCmd := &cobra.Command{
		Use:          "tls-pem-classifier [INPUT_FILE...]",
		Short:        "Sort PEM bundles into private key, leaf certificate, and chain",
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args, log)
		},
	}

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().BoolVarP(&tableOutput, "table", "t", false, "render a classification table instead of the sorted bundle")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "emit a JSON classification report instead of the sorted bundle")
	rootCmd.Flags().StringVar(&tlsOptionsFile, "tls-options", "", "YAML file with TLS options; validates the material by building a TLS config")

	return rootCmd.ExecuteContext(ctx)
}

// runClassify reads and classifies the input files, then emits the
// sorted PEM bundle, a table, or a JSON report.
func runClassify(args []string, log logger.Logger) error {
	if len(args) == 0 {
		return ErrInputFileRequired
	}
	OperationPerformed = true

	classifier := pemclassify.New()
	result, err := classifier.ClassifyFiles(args...)
	if err != nil {
		return err
	}

	if tlsOptionsFile != "" {
		opts, err := tlsmaterial.LoadOptions(tlsOptionsFile)
		if err != nil {
			return err
		}
		// Building the config proves the material is usable with the
		// supplied options before anything is written out.
		if _, err := tlsmaterial.Config(result, opts); err != nil {
			return err
		}
	}

	switch {
	case jsonOutput:
		data, err := result.ToJSON()
		if err != nil {
			return err
		}
		return writeOutput(data, log)
	case tableOutput:
		return writeOutput([]byte(result.RenderTable()), log)
	default:
		return writeOutput(sortedBundle(result), log)
	}
}

// sortedBundle re-serializes the classified material as PEM in
// canonical order: key first, then the leaf certificate, then the
// chain, then any DH parameter blocks.
func sortedBundle(result *pemclassify.Result) []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	writeBlock(buf, result.Key)
	writeBlock(buf, result.Certificate)
	for _, cert := range result.Chain {
		writeBlock(buf, cert)
	}
	for _, params := range result.DHParameters {
		writeBlock(buf, params)
	}

	// Copy out: the buffer goes back to the pool.
	return append([]byte(nil), buf.Bytes()...)
}

// writeBlock appends a block's raw text, terminating it with a newline
// when the source span lacked one so the next block starts on a fresh line.
func writeBlock(buf gc.Buffer, obj pemblocks.Object) {
	raw := obj.String()
	buf.WriteString(raw)
	if len(raw) > 0 && raw[len(raw)-1] != '\n' {
		buf.WriteByte('\n')
	}
}

// writeOutput writes data to the output file when one is set, otherwise
// to the logger.
func writeOutput(data []byte, log logger.Logger) error {
	if outputFile != "" {
		return os.WriteFile(outputFile, data, 0644)
	}
	log.Printf("%s", data)
	return nil
}
