package frame

type NodeType string

const (
	Container NodeType = "div"
	Inline    NodeType = "span"
	Picture   NodeType = "img"
)

// Style holds CSS-like attributes understood by the image renderer.
type Style map[string]string

// With returns a copy of s with overrides applied.
func (s Style) With(overrides Style) Style {
	merged := make(Style, len(s)+len(overrides))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Node is one element of the image tree.
type Node struct {
	Type     NodeType `json:"type"`
	Style    Style    `json:"style,omitempty"`
	Text     string   `json:"text,omitempty"`
	Src      string   `json:"src,omitempty"`
	Alt      string   `json:"alt,omitempty"`
	Children []Node   `json:"children,omitempty"`
}

func Box(style Style, children ...Node) Node {
	return Node{Type: Container, Style: style, Children: children}
}

func Text(style Style, text string) Node {
	return Node{Type: Container, Style: style, Text: text}
}

func Span(style Style, text string, children ...Node) Node {
	return Node{Type: Inline, Style: style, Text: text, Children: children}
}

func Image(src string, alt string, style Style) Node {
	return Node{Type: Picture, Src: src, Alt: alt, Style: style}
}

// Texts lists every text in the tree, depth first.
func (n Node) Texts() []string {
	var texts []string
	if n.Text != "" {
		texts = append(texts, n.Text)
	}
	for _, child := range n.Children {
		texts = append(texts, child.Texts()...)
	}
	return texts
}
