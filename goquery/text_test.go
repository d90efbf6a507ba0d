package goquery_test

import (
	"testing"

	"github.com/fwojciec/proddesc"
	"github.com/fwojciec/proddesc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("drops boilerplate elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>p{color:red}</style><script>var x = 1;</script></head>
<body>
<header>Shop logo</header>
<nav><ul><li>Home</li><li>Catalog</li></ul></nav>
<article><h1>Hex bolt M8x40</h1><p>Zinc plated steel bolt.</p></article>
<footer><p>Copyright</p></footer>
</body></html>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Hex bolt M8x40 Zinc plated steel bolt.", text)
	})

	t.Run("does not duplicate nested content", func(t *testing.T) {
		t.Parallel()

		html := `<div><div><p>Washer</p><span>DIN 125</span></div></div>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Washer DIN 125", text)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		html := "<p>  Anchor\n\n\tbolt   for   concrete </p><ul><li>M10</li><li>M12</li></ul>"

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Anchor bolt for concrete M10 M12", text)
	})

	t.Run("ignores text outside content elements", func(t *testing.T) {
		t.Parallel()

		html := `<body>loose text<table><tr><td>cell</td></tr></table></body>`

		text, err := goquery.NewTextExtractor().ExtractText(html)

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTextExtractor().ExtractText("   ")

		require.Error(t, err)
		assert.Equal(t, proddesc.EINVALID, proddesc.ErrorCode(err))
	})
}
