package forms_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxkit/hxkit/pkg/forms"
)

func TestUnionTokens(t *testing.T) {
	t.Parallel()

	t.Run("merges unique tokens", func(t *testing.T) {
		t.Parallel()

		out := forms.UnionTokens("form-select large", "dynamic-choice large")

		assert.ElementsMatch(t,
			[]string{"form-select", "large", "dynamic-choice"},
			strings.Fields(out),
		)
	})

	t.Run("handles empty inputs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "dynamic-choice", forms.UnionTokens("", "dynamic-choice"))
		assert.Equal(t, "", forms.UnionTokens("", ""))
	})
}

func TestSelectWidgetRender(t *testing.T) {
	t.Parallel()

	t.Run("renders select with sorted escaped attributes", func(t *testing.T) {
		t.Parallel()

		w := forms.NewDynamicSelectWidget("city",
			map[string]string{"hx-get": "/choices?a=1&b=2"},
			forms.ChoiceList{{Value: "ams", Label: "Amsterdam"}},
		)

		var b strings.Builder
		require.NoError(t, w.Render(&b))
		out := b.String()

		assert.Contains(t, out, `<select name="city"`)
		assert.Contains(t, out, `hx-get="/choices?a=1&amp;b=2"`)
		assert.Contains(t, out, `class="dynamic-choice"`)
	})

	t.Run("dynamic widget merges the marker class into caller class", func(t *testing.T) {
		t.Parallel()

		w := forms.NewDynamicSelectWidget("city",
			map[string]string{"class": "form-select"},
			nil,
		)

		var b strings.Builder
		require.NoError(t, w.Render(&b))

		assert.Contains(t, b.String(), "form-select")
		assert.Contains(t, b.String(), "dynamic-choice")
	})

	t.Run("static widget keeps only caller attributes", func(t *testing.T) {
		t.Parallel()

		w := forms.NewSelectWidget("color",
			map[string]string{"class": "form-select"},
			forms.ChoiceList{{Value: "red", Label: "Red"}},
		)

		var b strings.Builder
		require.NoError(t, w.Render(&b))
		out := b.String()

		assert.Contains(t, out, `class="form-select"`)
		assert.NotContains(t, out, "dynamic-choice")
		assert.NotContains(t, out, "hx-disable")
	})

	t.Run("static widget without attributes renders bare", func(t *testing.T) {
		t.Parallel()

		w := forms.NewSelectWidget("color", nil, forms.ChoiceList{
			{Value: "red", Label: "Red"},
		})

		var b strings.Builder
		require.NoError(t, w.Render(&b))
		out := b.String()

		assert.Contains(t, out, `<select name="color">`)
		assert.Contains(t, out, `<option value="red">Red</option>`)
	})

	t.Run("dynamic options carry hx-disable and escape labels", func(t *testing.T) {
		t.Parallel()

		w := forms.NewDynamicSelectWidget("city", nil, forms.ChoiceList{
			{Value: "a<b", Label: "A <b> label"},
		})

		var b strings.Builder
		require.NoError(t, w.Render(&b))
		out := b.String()

		assert.Contains(t, out, `hx-disable="true"`)
		assert.Contains(t, out, "a&lt;b")
		assert.NotContains(t, out, "<b>")
	})

	t.Run("marks the selected option", func(t *testing.T) {
		t.Parallel()

		w := forms.NewDynamicSelectWidget("city", nil, forms.ChoiceList{
			{Value: "ams", Label: "Amsterdam"},
			{Value: "rtm", Label: "Rotterdam"},
		})
		w.Selected = "rtm"

		var b strings.Builder
		require.NoError(t, w.Render(&b))

		assert.Contains(t, b.String(), `value="rtm" hx-disable="true" selected`)
		assert.NotContains(t, b.String(), `value="ams" hx-disable="true" selected`)
	})
}

func TestRenderOptions(t *testing.T) {
	t.Parallel()

	t.Run("renders a fragment of option elements only", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		err := forms.RenderOptions(&b, forms.ChoiceList{
			{Value: "ams", Label: "Amsterdam"},
			{Value: "rtm", Label: "Rotterdam"},
		}, "ams")
		require.NoError(t, err)
		out := b.String()

		assert.NotContains(t, out, "<select")
		assert.Equal(t, 2, strings.Count(out, "<option"))
		assert.Contains(t, out, `value="ams" hx-disable="true" selected`)
	})
}
