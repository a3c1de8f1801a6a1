// Package view is a small virtual node tree rendered by the reactive runtime.
//
// Components are lazy: they render when mounted, inside the owner of the
// component that contains them, so values published through a context by an
// ancestor are visible to them. A component keeps its instance, and the
// values it holds through Use, while its parent renders a component of the
// same kind at the same position.
package view

import (
	"fmt"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindComponent             // Nested component
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Node is a view node. A nil *Node renders nothing.
type Node struct {
	Kind     Kind
	Tag      string
	Props    Props
	Children []*Node
	Text     string
	Comp     Component

	// set on the components of a mounted tree
	inst *instance
}

// Props holds attributes and event handlers.
type Props map[string]any

// Attr is a single attribute or event handler.
type Attr struct {
	Key   string
	Value any
}

// Component is anything that can render to a Node.
type Component interface {
	Render() *Node
}

// ComponentFunc adapts a render function to Component.
type ComponentFunc func() *Node

// Render implements Component.
func (f ComponentFunc) Render() *Node { return f() }

// Func creates a component node from a render function.
func Func(render func() *Node) *Node {
	return Comp(ComponentFunc(render))
}

// Comp wraps a component in a node.
func Comp(c Component) *Node {
	return &Node{Kind: KindComponent, Comp: c}
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapping element.
func Fragment(children ...any) *Node {
	n := &Node{Kind: KindFragment}
	n.apply(children)
	return n
}

// El creates an element. Arguments may be attributes (Attr, []Attr, Props),
// children (*Node, []*Node, Component, string) or nil, which is skipped.
func El(tag string, args ...any) *Node {
	n := &Node{Kind: KindElement, Tag: strings.ToLower(tag)}
	n.apply(args)
	return n
}

func (n *Node) apply(args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Attr:
			n.setProp(v.Key, v.Value)
		case []Attr:
			for _, a := range v {
				n.setProp(a.Key, a.Value)
			}
		case Props:
			for k, val := range v {
				n.setProp(k, val)
			}
		case *Node:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.Children = append(n.Children, c)
				}
			}
		case []any:
			n.apply(v)
		case Component:
			n.Children = append(n.Children, Comp(v))
		case string:
			n.Children = append(n.Children, Text(v))
		default:
			n.Children = append(n.Children, Text(fmt.Sprint(v)))
		}
	}
}

func (n *Node) setProp(key string, value any) {
	if key == "" {
		return
	}
	if n.Kind != KindElement {
		return
	}
	if n.Props == nil {
		n.Props = make(Props)
	}
	n.Props[key] = value
}

// Handler returns the func() registered for the event, if any.
func (n *Node) Handler(event string) (func(), bool) {
	if n == nil || n.Props == nil {
		return nil, false
	}

	fn, ok := n.Props[event].(func())
	return fn, ok && fn != nil
}

// IsInteractive returns true if this node has event handlers.
func (n *Node) IsInteractive() bool {
	if n == nil || n.Kind != KindElement {
		return false
	}
	for key := range n.Props {
		if strings.HasPrefix(key, "on") {
			if _, ok := n.Props[key].(func()); ok {
				return true
			}
		}
	}
	return false
}
