package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/victorsapucaia/molic/core"
)

// Format identifies a graph document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned when a document format cannot be determined
// or is not supported.
var ErrUnknownFormat = errors.New("graphio: unknown format")

// Document is the wire form of a graph.
type Document struct {
	Nodes []Node `json:"nodes" toml:"node"`
}

// Node is one vertex with its neighbor list.
type Node struct {
	ID        string   `json:"id" toml:"id"`
	Neighbors []string `json:"neighbors" toml:"neighbors"`
}

// ParseFormat maps a format name ("json", "toml", case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath infers the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Graph converts the document into a validated graph.
func (d Document) Graph() (*core.Graph, error) {
	order := make([]string, len(d.Nodes))
	adj := make(map[string][]string, len(d.Nodes))
	for i, n := range d.Nodes {
		order[i] = n.ID
		if _, dup := adj[n.ID]; dup {
			// Leave the first list in place; FromAdjacency reports the duplicate.
			continue
		}
		adj[n.ID] = n.Neighbors
	}

	return core.FromAdjacency(order, adj)
}

// FromGraph returns the document form of g, in enumeration order.
func FromGraph(g *core.Graph) Document {
	adj := g.AdjacencyList()
	vertices := g.Vertices()
	doc := Document{Nodes: make([]Node, len(vertices))}
	for i, id := range vertices {
		doc.Nodes[i] = Node{ID: id, Neighbors: adj[id]}
	}

	return doc
}

// ReadJSON decodes a JSON graph document from r.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return doc.Graph()
}

// ReadTOML decodes a TOML graph document from r.
func ReadTOML(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return doc.Graph()
}

// Read decodes a graph document of the given format.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ReadFile opens path and decodes it according to its extension.
// Errors are wrapped with the path for context.
func ReadFile(path string) (*core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Read(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteJSON encodes g as an indented JSON graph document.
// The output can be re-read with [ReadJSON] and yields the same graph,
// enumeration order included.
func WriteJSON(g *core.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// WriteTOML encodes g as a TOML graph document.
func WriteTOML(g *core.Graph, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// Write encodes g in the given format.
func Write(g *core.Graph, w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(g, w)
	case FormatTOML:
		return WriteTOML(g, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
