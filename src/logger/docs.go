// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the logging surface for the PEM classifier
// CLI. It defines a small Logger interface with two implementations:
// CLILogger for human-readable terminal output and JSONLogger for
// line-delimited structured output aimed at scripting callers.
package logger
