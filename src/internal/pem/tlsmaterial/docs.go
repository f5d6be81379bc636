// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsmaterial turns a classification result into standard
// library TLS types. It assembles the leaf certificate, chain, and
// private key into a [crypto/tls.Certificate] and builds a
// [crypto/tls.Config] with caller-supplied options (loadable from a
// YAML file) forwarded verbatim. The classifier itself never touches
// TLS context construction; this package is the downstream consumer
// side of that boundary.
package tlsmaterial
