package cms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeNode(t *testing.T, raw string) Node {
	t.Helper()
	var n Node
	require.NoError(t, json.Unmarshal([]byte(raw), &n))
	return n
}

func TestNodeDecodeStyles(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind NodeKind
	}{
		{"normal is paragraph", `{"_type":"block","style":"normal","children":[{"text":"hi"}]}`, NodeParagraph},
		{"h1", `{"_type":"block","style":"h1","children":[{"text":"hi"}]}`, NodeHeading1},
		{"h2", `{"_type":"block","style":"h2","children":[{"text":"hi"}]}`, NodeHeading2},
		{"h3", `{"_type":"block","style":"h3","children":[{"text":"hi"}]}`, NodeHeading3},
		{"blockquote", `{"_type":"block","style":"blockquote","children":[{"text":"hi"}]}`, NodeBlockquote},
		{"unknown style degrades to paragraph", `{"_type":"block","style":"h7","children":[{"text":"hi"}]}`, NodeParagraph},
		{"bullet item", `{"_type":"block","style":"normal","listItem":"bullet","children":[{"text":"hi"}]}`, NodeBulletItem},
		{"number item", `{"_type":"block","style":"normal","listItem":"number","children":[{"text":"hi"}]}`, NodeNumberItem},
		{"list wins over heading style", `{"_type":"block","style":"h2","listItem":"bullet","children":[{"text":"hi"}]}`, NodeBulletItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := decodeNode(t, tt.raw)
			assert.Equal(t, tt.kind, n.Kind)
			require.Len(t, n.Spans, 1)
			assert.Equal(t, "hi", n.Spans[0].Text)
		})
	}
}

func TestNodeDecodeMarks(t *testing.T) {
	n := decodeNode(t, `{
		"_type": "block",
		"style": "normal",
		"markDefs": [{"_key": "abc", "_type": "link", "href": "https://example.com"}],
		"children": [
			{"text": "plain", "marks": []},
			{"text": "loud", "marks": ["strong", "em"]},
			{"text": "marked", "marks": ["highlight"]},
			{"text": "linked", "marks": ["abc"]}
		]
	}`)

	require.Len(t, n.Spans, 4)
	assert.Equal(t, Span{Text: "plain"}, n.Spans[0])
	assert.Equal(t, Span{Text: "loud", Bold: true, Italic: true}, n.Spans[1])
	assert.Equal(t, Span{Text: "marked", Highlight: true}, n.Spans[2])
	assert.Equal(t, Span{Text: "linked", LinkHref: "https://example.com"}, n.Spans[3])
}

func TestNodeDecodeUnknownMarkIgnored(t *testing.T) {
	n := decodeNode(t, `{"_type":"block","style":"normal","children":[{"text":"hi","marks":["mystery"]}]}`)

	require.Len(t, n.Spans, 1)
	assert.Equal(t, Span{Text: "hi"}, n.Spans[0])
}

func TestNodeDecodeImage(t *testing.T) {
	n := decodeNode(t, `{"_type":"image","asset":{"_ref":"image-deadbeef-800x600-jpg"}}`)

	assert.Equal(t, NodeImage, n.Kind)
	require.NotNil(t, n.Image)
	assert.Equal(t, "image-deadbeef-800x600-jpg", n.Image.Asset.Ref)
	assert.Empty(t, n.Spans)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryArticle))
	assert.True(t, ValidCategory(CategoryStrategy))
	assert.False(t, ValidCategory(Category("news")))
	assert.False(t, ValidCategory(Category("")))
}

func TestSlugMarshalsToString(t *testing.T) {
	raw, err := json.Marshal(Slug{Current: "my-post"})
	require.NoError(t, err)
	assert.Equal(t, `"my-post"`, string(raw))
}
