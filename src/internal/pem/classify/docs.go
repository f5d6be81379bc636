// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemclassify assigns TLS roles to parsed PEM objects. Given an
// unordered bag of blocks, possibly aggregated from several files, it
// deterministically selects the single private key, finds the end-entity
// certificate whose public key matches that key, and returns the
// remaining certificates as the chain in their original input order.
// Diffie-Hellman parameter blocks are set aside on the result for
// callers that can use them. Ambiguity (multiple keys) and absence
// (no key, no certificate, no matching certificate) terminate
// classification with descriptive sentinel errors; match failures carry
// the key's content fingerprint so the offending file can be located
// without extra instrumentation.
//
// The package also renders classification reports as markdown tables
// and structured JSON for the CLI surface.
package pemclassify
