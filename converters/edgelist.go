// SPDX-License-Identifier: MIT
// Package: blossom/converters
//
// edgelist.go — line-oriented edge-list codec with transparent gzip input.

package converters

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/blossom/matching"
)

// gzipMagic is the two-byte header of every gzip member.
var gzipMagic = []byte{0x1f, 0x8b}

// Decompress returns a reader that yields the plain bytes of r, unwrapping
// a gzip stream when r starts with the gzip magic. The returned closer
// releases the decompressor and never closes r itself.
func Decompress(r io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, errors.Wrap(err, "peek input header")
	}
	if len(head) < len(gzipMagic) || head[0] != gzipMagic[0] || head[1] != gzipMagic[1] {
		return br, io.NopCloser(br), nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not create gzip reader")
	}
	return zr, zr, nil
}

// ReadEdgeList parses the edge-list format described in the package doc.
// Gzip-compressed input is accepted. Self-loops are rejected here; parallel
// edges are kept and left to matching.NewGraph.
func ReadEdgeList(r io.Reader) (Document, error) {
	plain, closer, err := Decompress(r)
	if err != nil {
		return Document{}, err
	}
	defer closer.Close()

	labels := newLabelTable()
	var doc Document
	sc := bufio.NewScanner(plain)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
		case 1:
			labels.intern(fields[0])
		case 2:
			if fields[0] == fields[1] {
				return Document{}, errors.Wrapf(ErrSyntax, "line %d: self-loop on %q", line, fields[0])
			}
			u := labels.intern(fields[0])
			v := labels.intern(fields[1])
			doc.Edges = append(doc.Edges, matching.Edge{U: u, V: v})
		default:
			return Document{}, errors.Wrapf(ErrSyntax, "line %d: want 1 or 2 fields, got %d", line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return Document{}, errors.Wrapf(err, "read edge list at line %d", line+1)
	}
	doc.Labels = labels.labels
	return doc, nil
}

// WriteEdgeList writes doc so that ReadEdgeList restores the same labels in
// the same order with the same edges. A vertex is declared on its own line
// whenever first appearance in an edge would otherwise renumber it.
func WriteEdgeList(w io.Writer, doc Document) error {
	if err := doc.validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(doc.Labels))
	for _, l := range doc.Labels {
		if l == "" || strings.ContainsAny(l, " \t\r\n#") {
			return errors.Wrapf(ErrSyntax, "label %q cannot be written as an edge-list token", l)
		}
		if _, dup := seen[l]; dup {
			return errors.Wrapf(ErrSyntax, "duplicate label %q", l)
		}
		seen[l] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	next := 0 // vertices below next are already known to the reader
	declare := func(upTo int) {
		for ; next <= upTo; next++ {
			bw.WriteString(doc.Labels[next])
			bw.WriteByte('\n')
		}
	}
	for _, e := range doc.Edges {
		switch {
		case e.U < next && e.V < next:
		case e.U == next && (e.V < next || e.V == next+1):
			next = max(next+1, e.V+1)
		case e.V == next && e.U < next:
			next++
		default:
			// The line alone would renumber its endpoints.
			declare(max(e.U, e.V))
		}
		bw.WriteString(doc.Labels[e.U])
		bw.WriteByte(' ')
		bw.WriteString(doc.Labels[e.V])
		bw.WriteByte('\n')
	}
	declare(len(doc.Labels) - 1)
	return errors.Wrap(bw.Flush(), "flush edge list")
}
