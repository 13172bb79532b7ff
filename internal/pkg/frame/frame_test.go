package frame

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleWithDoesNotMutateBase(t *testing.T) {
	base := Style{"color": Gold}
	merged := base.With(Style{"color": Red, "flex": "1"})

	assert.Equal(t, Gold, base["color"])
	assert.Equal(t, Red, merged["color"])
	assert.Equal(t, "1", merged["flex"])
}

func TestTextsWalksTreeInOrder(t *testing.T) {
	tree := Box(Page,
		Text(Title, "Header"),
		Box(Card, Span(nil, "left", Span(nil, "inner")), Text(nil, "right")),
		Image("https://logo", "USDC", nil),
	)

	assert.Equal(t, []string{"Header", "left", "inner", "right"}, tree.Texts())
}

func TestFrameJSONShape(t *testing.T) {
	f := Frame{
		Image:        Text(nil, "hello"),
		Buttons:      []Button{Post("Next", "/frames/propose"), Link("Explorer", "https://example.com")},
		ImageOptions: Square(),
	}

	raw, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"image": {"type": "div", "text": "hello"},
		"buttons": [
			{"label": "Next", "action": "post", "target": "/frames/propose"},
			{"label": "Explorer", "action": "link", "target": "https://example.com"}
		],
		"imageOptions": {"aspectRatio": "1:1"}
	}`, string(raw))
}
