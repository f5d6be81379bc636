// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS PEM
// classifier. It implements a Cobra-based CLI that reads one or more
// PEM files, classifies their contents into private key, leaf
// certificate, and chain, and emits the sorted bundle as PEM, a
// markdown table, or a JSON report. An optional YAML options file
// exercises the TLS-config adapter to validate the material end to end.
// The package handles file I/O, context cancellation, and integrates
// with the logger package for output and error reporting.
package cli
