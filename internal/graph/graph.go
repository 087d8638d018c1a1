// Package graph reads and writes node-graph documents and extracts the
// selected part of a graph as a self-contained subgraph.
//
// Only node identity, the selection flag, and link endpoints are interpreted
// here. Everything else a node carries (its parameters) is opaque bytes.
package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNoSelection indicates the graph has no selected nodes to export.
var ErrNoSelection = errors.New("no selected nodes to export")

// Node is one node of a graph document.
type Node struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Label    string          `json:"label,omitempty"`
	Selected bool            `json:"selected,omitempty"`
	Position [2]float64      `json:"position,omitempty"`
	Params   json.RawMessage `json:"params,omitempty"` // opaque node parameters
}

// Link is a connection between two node ports.
type Link struct {
	FromNode string `json:"from_node"`
	FromPort string `json:"from_port,omitempty"`
	ToNode   string `json:"to_node"`
	ToPort   string `json:"to_port,omitempty"`
}

// Document is a node-graph document.
type Document struct {
	Name  string `json:"name,omitempty"`
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Load reads and parses the graph document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph %s: %w", path, err)
	}

	return &doc, nil
}

// Save writes the graph document to path as pretty-printed JSON atomically.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}

	data = append(data, '\n')

	return atomicWrite(path, data)
}

// SelectedSubgraph extracts the selected nodes and the links running between
// them. Links with an unselected endpoint are dropped. The subgraph's nodes
// have their selection flag cleared. Returns ErrNoSelection when the graph
// has no selected nodes.
func (d *Document) SelectedSubgraph() (*Document, error) {
	selected := map[string]bool{}

	sub := &Document{Name: d.Name}
	for _, n := range d.Nodes {
		if !n.Selected {
			continue
		}

		n.Selected = false
		sub.Nodes = append(sub.Nodes, n)
		selected[n.ID] = true
	}

	if len(sub.Nodes) == 0 {
		return nil, ErrNoSelection
	}

	for _, l := range d.Links {
		if selected[l.FromNode] && selected[l.ToNode] {
			sub.Links = append(sub.Links, l)
		}
	}

	return sub, nil
}

// Merge inserts the nodes and links of sub into d. Node IDs already present
// in d are remapped to fresh IDs, and sub's links follow the remapping.
// Returns the number of nodes added.
func (d *Document) Merge(sub *Document) int {
	existing := map[string]bool{}
	for _, n := range d.Nodes {
		existing[n.ID] = true
	}

	remap := map[string]string{}

	for _, n := range sub.Nodes {
		if existing[n.ID] {
			fresh := uuid.NewString()
			remap[n.ID] = fresh
			n.ID = fresh
		}

		existing[n.ID] = true
		d.Nodes = append(d.Nodes, n)
	}

	for _, l := range sub.Links {
		if id, ok := remap[l.FromNode]; ok {
			l.FromNode = id
		}

		if id, ok := remap[l.ToNode]; ok {
			l.ToNode = id
		}

		d.Links = append(d.Links, l)
	}

	return len(sub.Nodes)
}

// atomicWrite writes data to path via temp-file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		if tmpPath != "" {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	tmpPath = "" // prevent deferred cleanup

	return nil
}
