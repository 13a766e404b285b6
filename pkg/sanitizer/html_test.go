package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/hxkit/hxkit/pkg/sanitizer"
)

func TestSanitizeMessage(t *testing.T) {
	t.Parallel()

	t.Run("keeps basic formatting", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeMessage("<strong>Saved</strong> <em>successfully</em>")

		assert.Equal(t, "<strong>Saved</strong> <em>successfully</em>", out)
	})

	t.Run("strips script tags", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeMessage(`Saved<script>alert("xss")</script>`)

		assert.Equal(t, "Saved", out)
	})

	t.Run("strips event handler attributes", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeMessage(`<span onclick="evil()">Saved</span>`)

		assert.Equal(t, "<span>Saved</span>", out)
	})

	t.Run("strips javascript URLs", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeMessage(`<a href="javascript:evil()">link</a>`)

		assert.NotContains(t, out, "javascript:")
	})

	t.Run("keeps safe links with nofollow", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeMessage(`<a href="https://example.com">link</a>`)

		assert.Contains(t, out, `href="https://example.com"`)
		assert.Contains(t, out, `rel="nofollow"`)
	})
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	t.Run("removes all markup", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Saved", sanitizer.StripHTML("<strong>Saved</strong>"))
	})
}

func TestSanitizeCustom(t *testing.T) {
	t.Parallel()

	t.Run("nil policy returns input unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<b>x</b>", sanitizer.SanitizeCustom("<b>x</b>", nil))
	})

	t.Run("applies supplied policy", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeCustom("<b>x</b>", bluemonday.StrictPolicy())

		assert.Equal(t, "x", out)
	})
}
