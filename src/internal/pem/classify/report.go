// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemclassify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	pemblocks "github.com/H0llyW00dzZ/tls-pem-classifier/src/internal/pem/blocks"
)

// RenderTable renders the classification result as a formatted markdown
// table showing each object's role, kind, size, and content
// fingerprint, in output order: key, leaf, chain, then any DH
// parameter blocks.
func (r *Result) RenderTable() string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Role", "Kind", "Size", "Fingerprint (SHA-256)"})

	var rows [][]string
	row := func(role string, obj pemblocks.Object) {
		rows = append(rows, []string{
			fmt.Sprintf("%d", len(rows)+1),
			role,
			obj.Kind().String(),
			fmt.Sprintf("%d B", len(obj.String())),
			shortFingerprint(obj),
		})
	}

	row("Private Key", r.Key)
	row("Leaf Certificate", r.Certificate)
	for _, cert := range r.Chain {
		row("Chain Certificate", cert)
	}
	for _, params := range r.DHParameters {
		row("DH Parameters", params)
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// ToJSON converts the classification result to a structured JSON report
// suitable for scripting and external tools.
func (r *Result) ToJSON() ([]byte, error) {
	type objectData struct {
		Role        string `json:"role"`
		Kind        string `json:"kind"`
		Size        int    `json:"size"`
		Fingerprint string `json:"fingerprint"`
	}

	type reportData struct {
		Key          objectData   `json:"key"`
		Certificate  objectData   `json:"certificate"`
		Chain        []objectData `json:"chain"`
		DHParameters []objectData `json:"dhParameters,omitempty"`
	}

	describe := func(role string, obj pemblocks.Object) objectData {
		return objectData{
			Role:        role,
			Kind:        obj.Kind().String(),
			Size:        len(obj.String()),
			Fingerprint: obj.Fingerprint(),
		}
	}

	data := reportData{
		Key:         describe("private-key", r.Key),
		Certificate: describe("leaf-certificate", r.Certificate),
		Chain:       make([]objectData, 0, len(r.Chain)),
	}
	for _, cert := range r.Chain {
		data.Chain = append(data.Chain, describe("chain-certificate", cert))
	}
	for _, params := range r.DHParameters {
		data.DHParameters = append(data.DHParameters, describe("dh-parameters", params))
	}

	return json.MarshalIndent(data, "", "  ")
}

// shortFingerprint truncates an object's fingerprint for table display.
func shortFingerprint(obj pemblocks.Object) string {
	return obj.Fingerprint()[:16]
}
