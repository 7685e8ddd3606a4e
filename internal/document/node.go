// Package document models design documents holding colour cards and applies
// colour encodings and contrast figures to them.
package document

import (
	"github.com/jmylchreest/swatch/internal/colour"
)

// NodeType identifies the kind of a document node.
type NodeType string

// Node types understood by the updater. Other types are preserved untouched.
const (
	NodeFrame     NodeType = "FRAME"
	NodeInstance  NodeType = "INSTANCE"
	NodeRectangle NodeType = "RECTANGLE"
	NodeText      NodeType = "TEXT"
)

// PaintSolid is the only paint type a colour card swatch may use.
const PaintSolid = "SOLID"

// Document is a page of nodes plus the current selection.
type Document struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Selection []string `json:"selection,omitempty" yaml:"selection,omitempty"`
	Children  []*Node  `json:"children" yaml:"children"`
}

// Node is an element of the document tree.
type Node struct {
	ID         string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string   `json:"name" yaml:"name"`
	Type       NodeType `json:"type" yaml:"type"`
	Visible    *bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
	Characters string   `json:"characters,omitempty" yaml:"characters,omitempty"`
	Fills      []Paint  `json:"fills,omitempty" yaml:"fills,omitempty"`
	Children   []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// Paint is a node fill.
type Paint struct {
	Type  string      `json:"type" yaml:"type"`
	Color *colour.RGB `json:"color,omitempty" yaml:"color,omitempty"`
}

// IsVisible reports whether the node is shown. Nodes default to visible.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// SetVisible sets the node's visibility.
func (n *Node) SetVisible(v bool) {
	n.Visible = &v
}

// FirstChild returns the first direct child of the given type, or nil.
func (n *Node) FirstChild(t NodeType) *Node {
	for _, child := range n.Children {
		if child.Type == t {
			return child
		}
	}
	return nil
}

// Find returns the first node with the given ID, searching depth first.
func (d *Document) Find(id string) *Node {
	return find(d.Children, id)
}

func find(nodes []*Node, id string) *Node {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if found := find(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// SelectedFrame returns the first selected node when it is a frame.
func (d *Document) SelectedFrame() *Node {
	if len(d.Selection) == 0 || d.Selection[0] == "" {
		return nil
	}
	n := d.Find(d.Selection[0])
	if n == nil || n.Type != NodeFrame {
		return nil
	}
	return n
}
