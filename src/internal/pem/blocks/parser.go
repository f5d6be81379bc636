// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemblocks

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/helper/gc"
)

// Parser extracts typed PEM objects from textual input.
//
// Parser is stateless after construction and safe for concurrent use.
type Parser struct {
	re     *regexp.Regexp
	labels []string
}

// New creates a Parser whose matching pattern is assembled from the
// label registry. Each registered label gets its own alternation branch
// with the label spelled literally in both markers, so a block is only
// extracted when its BEGIN and END labels agree.
func New() *Parser {
	labels := make([]string, 0, len(labelToKind))
	for label := range labelToKind {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	branches := make([]string, len(labels))
	for i, label := range labels {
		quoted := regexp.QuoteMeta(label)
		branches[i] = fmt.Sprintf(
			`-----BEGIN (%s)-----\r?\n(?s:.+?)\r?\n-----END %s-----(?:\r?\n)?`,
			quoted, quoted,
		)
	}

	return &Parser{
		re:     regexp.MustCompile(strings.Join(branches, "|")),
		labels: labels,
	}
}

// Parse scans text for PEM blocks and returns one Object per
// recognized block, in source order. Both \n and \r\n line endings are
// accepted and preserved verbatim; a trailing newline after the END
// marker is consumed into the raw text when present.
//
// Parse never fails: text outside recognized blocks, including blocks
// with unregistered labels, is skipped and an input with no recognized
// blocks yields an empty result.
func (p *Parser) Parse(text string) []Object {
	var objects []Object
	for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
		raw := text[m[0]:m[1]]
		for i := range p.labels {
			if m[2*(i+1)] < 0 {
				continue
			}
			label := text[m[2*(i+1)]:m[2*(i+1)+1]]
			objects = append(objects, newObject(labelToKind[label], raw))
			break
		}
	}
	return objects
}

// ParseBytes decodes data as UTF-8 and parses the result. Invalid byte
// sequences are substituted with the Unicode replacement rune rather
// than reported, so a corrupt byte outside a block never aborts
// extraction of the well-formed blocks around it.
func (p *Parser) ParseBytes(data []byte) []Object {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		// The UTF-8 decoder substitutes rather than fails; treat an
		// unexpected transformer error as undecodable input and parse
		// the bytes as-is.
		decoded = data
	}
	return p.Parse(string(decoded))
}

// ParseFile reads the named file and parses PEM blocks from its
// contents. The file handle and the pooled read buffer are released on
// all exit paths.
func (p *Parser) ParseFile(name string) ([]Object, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("pemblocks: opening %s: %w", name, err)
	}
	defer file.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("pemblocks: reading %s: %w", name, err)
	}

	return p.ParseBytes(buf.Bytes()), nil
}
