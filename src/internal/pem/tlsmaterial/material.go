// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsmaterial

import (
	"crypto/tls"
	"fmt"

	pemblocks "github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/pem/blocks"
	pemclassify "github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/pem/classify"
)

// Certificate builds a [tls.Certificate] from a classification result.
// The leaf certificate comes first, followed by the chain in its
// classified order, matching what TLS peers expect on the wire.
func Certificate(res *pemclassify.Result) (tls.Certificate, error) {
	bundle := appendBlock(nil, res.Certificate)
	for _, cert := range res.Chain {
		bundle = appendBlock(bundle, cert)
	}

	cert, err := tls.X509KeyPair(bundle, res.Key.Bytes())
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("tlsmaterial: assembling key pair: %w", err)
	}
	return cert, nil
}

// Config builds a [tls.Config] carrying the classified material, with
// any caller-supplied options forwarded verbatim. A nil opts yields a
// config holding only the certificate.
//
// DH parameter blocks are not consumed here: crypto/tls negotiates its
// own key-exchange groups, so they remain on the Result for callers
// driving OpenSSL-style stacks that accept explicit parameters.
func Config(res *pemclassify.Result, opts *Options) (*tls.Config, error) {
	cert, err := Certificate(res)
	if err != nil {
		return nil, err
	}

	cfg := &tls.Config{Certificates: []tls.Certificate{cert}}
	if opts == nil {
		return cfg, nil
	}
	if err := opts.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// appendBlock appends a block's raw text, inserting a line break when
// the previous block lacked a trailing newline so the PEM decoder still
// sees each BEGIN marker at the start of a line.
func appendBlock(dst []byte, obj pemblocks.Object) []byte {
	if len(dst) > 0 && dst[len(dst)-1] != '\n' {
		dst = append(dst, '\n')
	}
	return append(dst, obj.Bytes()...)
}
