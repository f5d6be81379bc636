// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemblocks

import (
	"crypto/sha256"
	"encoding/hex"
)

// Kind identifies the type of material carried by a [PEM] block.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
type Kind int

const (
	// KindCertificate is an X.509 certificate block.
	KindCertificate Kind = iota

	// KindRSAPrivateKey is a PKCS#1 RSA private key block.
	// It is the only private-key variant currently registered.
	KindRSAPrivateKey

	// KindDHParameters is a Diffie-Hellman domain parameters block.
	KindDHParameters
)

// String returns the PEM label for the kind.
func (k Kind) String() string {
	switch k {
	case KindCertificate:
		return "CERTIFICATE"
	case KindRSAPrivateKey:
		return "RSA PRIVATE KEY"
	case KindDHParameters:
		return "DH PARAMETERS"
	default:
		return "UNKNOWN"
	}
}

// IsPrivateKey reports whether the kind is a private-key variant.
func (k Kind) IsPrivateKey() bool { return k == KindRSAPrivateKey }

// labelToKind is the label registry. The Parser assembles its matching
// pattern from this map, so blocks with labels outside the registry are
// never extracted. Adding a label here is all that is needed to teach
// the parser a new block type.
var labelToKind = map[string]Kind{
	"CERTIFICATE":     KindCertificate,
	"RSA PRIVATE KEY": KindRSAPrivateKey,
	"DH PARAMETERS":   KindDHParameters,
}

// Object is a single PEM block extracted from textual input.
//
// An Object is an immutable value: equality compares the kind and the
// verbatim raw text, so two objects parsed from identical source spans
// compare equal and Object can be used directly as a map key.
type Object struct {
	kind Kind
	raw  string
}

func newObject(kind Kind, raw string) Object {
	return Object{kind: kind, raw: raw}
}

// Kind returns the block type.
func (o Object) Kind() Kind { return o.kind }

// String returns the exact source text of the block, from the BEGIN
// marker through the END marker, including the trailing newline when
// one was present in the source. Concatenating the String values of a
// parse result reproduces the matched input spans byte for byte.
func (o Object) String() string { return o.raw }

// Bytes returns the raw block text as a byte slice.
func (o Object) Bytes() []byte { return []byte(o.raw) }

// Fingerprint returns the hex-encoded SHA-256 digest of the raw block
// text. It is a stable content identifier used in diagnostics and
// error messages.
func (o Object) Fingerprint() string {
	sum := sha256.Sum256([]byte(o.raw))
	return hex.EncodeToString(sum[:])
}
