package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString_ObjectKeyOrder(t *testing.T) {
	// Arrange
	text := `{"zulu": 1, "alpha": 2, "mike": {"b": true, "a": null}}`

	// Act
	v, err := ParseString(text, "test")

	// Assert
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, v.Object().Keys())

	nested, ok := v.Object().Get("mike")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, nested.Object().Keys())
}

func TestParseString_ScalarKinds(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Kind
	}{
		{name: "null", text: `null`, want: KindNull},
		{name: "bool", text: `true`, want: KindBool},
		{name: "integer", text: `42`, want: KindNumber},
		{name: "float", text: `4.2`, want: KindNumber},
		{name: "string", text: `"hello"`, want: KindString},
		{name: "array", text: `[1, 2]`, want: KindArray},
		{name: "object", text: `{}`, want: KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseString(tt.text, "test")

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind())
		})
	}
}

func TestParseString_NumberLiteralKeptVerbatim(t *testing.T) {
	// Arrange
	text := `[1, 1.0, 1e3, -0.5]`

	// Act
	v, err := ParseString(text, "test")

	// Assert
	require.NoError(t, err)
	items := v.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "1", items[0].Number().String())
	assert.Equal(t, "1.0", items[1].Number().String())
	assert.Equal(t, "1e3", items[2].Number().String())
	assert.Equal(t, "-0.5", items[3].Number().String())
}

func TestParseString_MalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "unterminated object", text: `{"invalid`},
		{name: "bare word", text: `nope`},
		{name: "empty input", text: ``},
		{name: "whitespace only", text: `   `},
		{name: "unterminated array", text: `[1, 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.text, "configs/task.json")

			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "configs/task.json", parseErr.Source)
			assert.Contains(t, err.Error(), "configs/task.json")
		})
	}
}

func TestParseString_TrailingData(t *testing.T) {
	// Act
	_, err := ParseString(`{"ok": true} garbage`, "test")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestParseString_TrailingWhitespaceIsAllowed(t *testing.T) {
	// Act
	v, err := ParseString("{\"ok\": true}\n\n", "test")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, KindObject, v.Kind())
}
