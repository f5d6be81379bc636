// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// tls-pem-classifier is a command-line tool for sorting PEM bundles
// into their TLS roles: the private key, the matching end-entity
// certificate, and the remaining certificates as a chain.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-pem-classifier/cmd/tls-pem-classifier@latest
//
// # Usage
//
//	tls-pem-classifier INPUT_FILE... [FLAGS]
//
// # Flags
//
//	-o, --output      Destination file (default: stdout)
//	-t, --table       Display classification as markdown table
//	-j, --json        Emit JSON classification report
//	    --tls-options YAML file with TLS options; validates the material
//	                  by building a TLS config before output
//
// # Examples
//
// Sort a mixed bundle into key, leaf, chain order:
//
//	tls-pem-classifier bundle.pem -o sorted.pem
//
// Classify material spread across several files:
//
//	tls-pem-classifier key.pem cert_and_chain.pem
//
// Produce a JSON report with content fingerprints:
//
//	tls-pem-classifier bundle.pem --json > report.json
//
// Validate the material against TLS options:
//
//	tls-pem-classifier bundle.pem --tls-options options.yaml
package main
