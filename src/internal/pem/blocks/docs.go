// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemblocks tokenizes [PEM] input into typed, immutable objects.
// It scans text for -----BEGIN <label>----- / -----END <label>----- pairs,
// classifies each block by its label (certificate, RSA private key, or
// DH parameters), and returns the blocks in source order with their raw
// text preserved byte for byte. Unrecognized labels and surrounding
// garbage are skipped rather than reported, and byte-oriented input is
// decoded leniently so a single corrupt byte never loses the rest of
// the file. This package is the input layer for the role classifier.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package pemblocks
