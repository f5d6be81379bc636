// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemclassify

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/helpers"

	pemblocks "github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/pem/blocks"
)

var (
	// ErrNoKey indicates that no private-key object was found among the inputs.
	ErrNoKey = errors.New("pemclassify: no private key found")

	// ErrMultipleKeys indicates that more than one private-key object was
	// found; the selection is ambiguous and classification cannot proceed.
	ErrMultipleKeys = errors.New("pemclassify: multiple private keys found")

	// ErrNoCertificate indicates that no certificate object was found among the inputs.
	ErrNoCertificate = errors.New("pemclassify: no certificate found")

	// ErrNoMatchingCertificate indicates that certificates were supplied but
	// none carries the public component of the selected private key.
	ErrNoMatchingCertificate = errors.New("pemclassify: no certificate matches the private key")
)

// Result is the outcome of classifying a bag of PEM objects. A Result
// is built fresh per classification call and is not mutated afterwards.
type Result struct {
	// Key is the single private key found among the inputs.
	Key pemblocks.Object

	// Certificate is the leaf: the first certificate, in input order,
	// whose public key matches Key. First-in-order is a documented
	// tie-break for the unlikely case of duplicate matching
	// certificates, not undefined behavior.
	Certificate pemblocks.Object

	// Chain holds the remaining certificates, preserving their relative
	// order from the input sequence. Downstream TLS consumers may rely
	// on a deterministic order, so the caller's ordering is kept as-is
	// rather than re-sorted hierarchically.
	Chain []pemblocks.Object

	// DHParameters holds any Diffie-Hellman parameter blocks from the
	// inputs. They are not part of the key/certificate/chain triple;
	// callers hand them to a TLS context factory as optional
	// configuration.
	DHParameters []pemblocks.Object
}

// Classifier assigns roles to parsed PEM objects: the single private
// key, the certificate matching that key, and the rest of the
// certificates as the chain.
//
// Classifier is stateless after construction and safe for concurrent use.
type Classifier struct {
	parser *pemblocks.Parser
}

// New creates a Classifier with a default parser for the file-based
// entry points.
func New() *Classifier {
	return &Classifier{parser: pemblocks.New()}
}

// Classify partitions objects by kind and resolves their roles. It runs
// four sequential checks, any failure terminating classification:
// exactly one private key must exist, at least one certificate must
// exist, and at least one certificate must carry the key's public
// component. Everything else certificate-kind becomes the chain in
// input order.
//
// Classify is a pure function of its input sequence; repeated calls
// with the same objects yield identical results.
func (c *Classifier) Classify(objects []pemblocks.Object) (*Result, error) {
	var keys, certs, dh []pemblocks.Object
	for _, obj := range objects {
		switch {
		case obj.Kind().IsPrivateKey():
			keys = append(keys, obj)
		case obj.Kind() == pemblocks.KindCertificate:
			certs = append(certs, obj)
		case obj.Kind() == pemblocks.KindDHParameters:
			dh = append(dh, obj)
		}
	}

	if len(keys) == 0 {
		return nil, ErrNoKey
	}
	if len(keys) > 1 {
		return nil, fmt.Errorf("%w: %d keys supplied", ErrMultipleKeys, len(keys))
	}
	key := keys[0]

	if len(certs) == 0 {
		return nil, ErrNoCertificate
	}

	signer, err := helpers.ParsePrivateKeyPEM(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("pemclassify: parsing private key %s: %w", key.Fingerprint(), err)
	}

	leaf := -1
	for i, cert := range certs {
		ok, err := matchesPublicKey(cert, signer.Public())
		if err != nil {
			return nil, err
		}
		if ok {
			// First matching certificate in input order wins.
			leaf = i
			break
		}
	}
	if leaf < 0 {
		return nil, fmt.Errorf("%w %s", ErrNoMatchingCertificate, key.Fingerprint())
	}

	chain := make([]pemblocks.Object, 0, len(certs)-1)
	chain = append(chain, certs[:leaf]...)
	chain = append(chain, certs[leaf+1:]...)

	return &Result{
		Key:          key,
		Certificate:  certs[leaf],
		Chain:        chain,
		DHParameters: dh,
	}, nil
}

// ClassifyFiles parses every named file and classifies the combined
// objects. Objects keep their per-file order and files contribute in
// argument order, so cross-file ordering mirrors what the caller
// supplied. This is the typical external entry point.
func (c *Classifier) ClassifyFiles(names ...string) (*Result, error) {
	var objects []pemblocks.Object
	for _, name := range names {
		parsed, err := c.parser.ParseFile(name)
		if err != nil {
			return nil, err
		}
		objects = append(objects, parsed...)
	}
	return c.Classify(objects)
}

// matchesPublicKey reports whether the certificate carries pub as its
// public key. The comparison is cryptographic (key material equality),
// not byte equality of the PEM text.
func matchesPublicKey(cert pemblocks.Object, pub crypto.PublicKey) (bool, error) {
	parsed, err := helpers.ParseCertificatePEM(cert.Bytes())
	if err != nil {
		return false, fmt.Errorf("pemclassify: parsing certificate %s: %w", cert.Fingerprint(), err)
	}

	certPub, ok := parsed.PublicKey.(interface{ Equal(crypto.PublicKey) bool })
	if !ok {
		return false, nil
	}
	return certPub.Equal(pub), nil
}
