package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/logger"
)

func payloadFrom(t *testing.T, text string) dynamic.Value {
	t.Helper()
	v, err := dynamic.ParseString(text, "test")
	require.NoError(t, err)
	return v
}

func deviceKeyStrings(t *testing.T, payload dynamic.Value) []string {
	t.Helper()
	keysVal, ok := payload.Object().Get("device_keys")
	require.True(t, ok, "device_keys must exist after injection")
	out := make([]string, 0, len(keysVal.Items()))
	for _, item := range keysVal.Items() {
		out = append(out, item.Str())
	}
	return out
}

func TestLoadSecretKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want dynamic.Kind
	}{
		{name: "empty", raw: "", want: dynamic.KindNull},
		{name: "whitespace", raw: "   ", want: dynamic.KindNull},
		{name: "malformed degrades to null", raw: `{"broken`, want: dynamic.KindNull},
		{name: "list", raw: `["k1","k2"]`, want: dynamic.KindArray},
		{name: "aliases", raw: `{"iphone":"k1"}`, want: dynamic.KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := loadSecretKeys(tt.raw, logger.Nop())

			assert.Equal(t, tt.want, keys.Kind())
		})
	}
}

func TestInjectDeviceKeys_ListAppendsAndDedupes(t *testing.T) {
	// Arrange
	payload := payloadFrom(t, `{"device_keys":["a","b"],"msg":"hi"}`)
	keys := payloadFrom(t, `["b","c"]`)

	// Act
	injectDeviceKeys(payload, keys, logger.Nop())

	// Assert: existing order kept, new keys appended once.
	assert.Equal(t, []string{"a", "b", "c"}, deviceKeyStrings(t, payload))

	msg, _ := payload.Object().Get("msg")
	assert.Equal(t, "hi", msg.Str())
}

func TestInjectDeviceKeys_ListIntoMissingField(t *testing.T) {
	// Arrange
	payload := payloadFrom(t, `{}`)
	keys := payloadFrom(t, `["k1"]`)

	// Act
	injectDeviceKeys(payload, keys, logger.Nop())

	// Assert
	assert.Equal(t, []string{"k1"}, deviceKeyStrings(t, payload))
}

func TestInjectDeviceKeys_AliasResolution(t *testing.T) {
	// Arrange
	payload := payloadFrom(t, `{"device_keys":["iphone","literal-key","ipad"]}`)
	keys := payloadFrom(t, `{"iphone":"secret-1","ipad":"secret-2"}`)

	// Act
	injectDeviceKeys(payload, keys, logger.Nop())

	// Assert: aliases replaced in place, unknown entries passed through.
	assert.Equal(t, []string{"secret-1", "literal-key", "secret-2"}, deviceKeyStrings(t, payload))
}

func TestInjectDeviceKeys_EmptyListGetsAllSecrets(t *testing.T) {
	// Arrange
	payload := payloadFrom(t, `{"device_keys":[]}`)
	keys := payloadFrom(t, `{"iphone":"secret-1","ipad":"secret-2"}`)

	// Act
	injectDeviceKeys(payload, keys, logger.Nop())

	// Assert: injected in the secrets' own key order.
	assert.Equal(t, []string{"secret-1", "secret-2"}, deviceKeyStrings(t, payload))
}

func TestInjectDeviceKeys_NoSecretsStillEnsuresField(t *testing.T) {
	// Arrange
	payload := payloadFrom(t, `{"msg":"hi"}`)

	// Act
	injectDeviceKeys(payload, dynamic.Null(), logger.Nop())

	// Assert
	assert.Empty(t, deviceKeyStrings(t, payload))
}

func TestInjectDeviceKeys_NonObjectPayloadIsANoop(t *testing.T) {
	// Arrange
	payload := payloadFrom(t, `[1,2]`)

	// Act: must not panic.
	injectDeviceKeys(payload, payloadFrom(t, `["k"]`), logger.Nop())

	// Assert
	assert.Equal(t, dynamic.KindArray, payload.Kind())
}
