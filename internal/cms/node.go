package cms

import "encoding/json"

// NodeKind is the closed set of portable-text node kinds the site renders.
type NodeKind string

const (
	NodeParagraph  NodeKind = "paragraph"
	NodeHeading1   NodeKind = "h1"
	NodeHeading2   NodeKind = "h2"
	NodeHeading3   NodeKind = "h3"
	NodeBlockquote NodeKind = "blockquote"
	NodeBulletItem NodeKind = "bullet"
	NodeNumberItem NodeKind = "number"
	NodeImage      NodeKind = "image"
)

// Node is one portable-text block. Text kinds carry Spans; NodeImage
// carries Image. Unknown block styles decode as paragraphs so newly
// authored content degrades instead of failing.
type Node struct {
	Kind  NodeKind `json:"kind"`
	Spans []Span   `json:"spans,omitempty"`
	Image *Image   `json:"image,omitempty"`
}

// Span is a run of text with its decorations resolved. LinkHref is empty
// for non-link spans.
type Span struct {
	Text      string `json:"text"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
	LinkHref  string `json:"link_href,omitempty"`
}

// rawBlock mirrors the wire shape Sanity emits for portable text.
type rawBlock struct {
	Type     string `json:"_type"`
	Style    string `json:"style"`
	ListItem string `json:"listItem"`
	Children []struct {
		Text  string   `json:"text"`
		Marks []string `json:"marks"`
	} `json:"children"`
	MarkDefs []struct {
		Key  string `json:"_key"`
		Type string `json:"_type"`
		Href string `json:"href"`
	} `json:"markDefs"`
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

// UnmarshalJSON decodes a Sanity portable-text block into the closed node
// enum above.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw rawBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Type == "image" {
		img := &Image{}
		img.Asset.Ref = raw.Asset.Ref
		*n = Node{Kind: NodeImage, Image: img}
		return nil
	}

	links := make(map[string]string, len(raw.MarkDefs))
	for _, def := range raw.MarkDefs {
		if def.Type == "link" {
			links[def.Key] = def.Href
		}
	}

	spans := make([]Span, 0, len(raw.Children))
	for _, child := range raw.Children {
		span := Span{Text: child.Text}
		for _, mark := range child.Marks {
			switch mark {
			case "strong":
				span.Bold = true
			case "em":
				span.Italic = true
			case "highlight":
				span.Highlight = true
			default:
				if href, ok := links[mark]; ok {
					span.LinkHref = href
				}
			}
		}
		spans = append(spans, span)
	}

	*n = Node{Kind: blockKind(raw), Spans: spans}
	return nil
}

func blockKind(raw rawBlock) NodeKind {
	switch raw.ListItem {
	case "bullet":
		return NodeBulletItem
	case "number":
		return NodeNumberItem
	}

	switch raw.Style {
	case "h1":
		return NodeHeading1
	case "h2":
		return NodeHeading2
	case "h3":
		return NodeHeading3
	case "blockquote":
		return NodeBlockquote
	default:
		return NodeParagraph
	}
}
