package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImageURL(t *testing.T) {
	assert.True(t, IsImageURL("http://localhost/static/abc.png"))
	assert.True(t, IsImageURL("pic.jpeg"))
	assert.False(t, IsImageURL("hello there"))
	assert.False(t, IsImageURL("notes.pdf"))
	assert.False(t, IsImageURL("trailing.png "))
}

func TestStaticFilename(t *testing.T) {
	name, ok := StaticFilename("http://localhost:80/static/4f2a.png")
	require.True(t, ok)
	assert.Equal(t, "4f2a.png", name)

	_, ok = StaticFilename("http://localhost:80/uploads/4f2a.png")
	assert.False(t, ok)

	_, ok = StaticFilename("http://localhost:80/static/")
	assert.False(t, ok)
}

func TestThreadPrependOrdersNewestFirst(t *testing.T) {
	var th Thread

	th.Prepend(Message{Content: "first"})
	th.Prepend(Message{Content: "second"})

	msgs := th.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "second", msgs[0].Content)
	assert.Equal(t, "first", msgs[1].Content)
}

func TestThreadReplaceDiscardsPrevious(t *testing.T) {
	var th Thread

	th.Prepend(Message{Content: "stale"})
	th.Replace([]Message{{Content: "b"}, {Content: "a"}})

	require.Equal(t, 2, th.Len())
	assert.Equal(t, "b", th.Messages()[0].Content)
}
