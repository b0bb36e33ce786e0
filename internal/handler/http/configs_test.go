// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListConfigs(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	f.writeConfig(t, "zeta.json", `{}`)
	f.writeConfig(t, "alpha.json", `{}`)
	f.writeConfig(t, "notes.txt", "not json")

	// Act
	resp, err := http.Get(f.server.URL + "/api/configs")

	// Assert: sorted json names only, as a json array.
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `["alpha.json","zeta.json"]`, string(body))
}

func TestListConfigs_EmptyDirectory(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)

	// Act
	resp, err := http.Get(f.server.URL + "/api/configs")

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))
}

func TestGetConfig(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	f.writeConfig(t, "task.json", `{"b": 1, "a": 2}`)

	// Act
	resp, err := http.Get(f.server.URL + "/api/configs/task.json")

	// Assert: compact body, key order preserved.
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"b":1,"a":2}`, string(body))
}

func TestGetConfig_NameWithoutExtension(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	f.writeConfig(t, "task.json", `{"x": true}`)

	// Act
	resp, err := http.Get(f.server.URL + "/api/configs/task")

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetConfig_NotFound(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)

	// Act
	resp, err := http.Get(f.server.URL + "/api/configs/missing.json")

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetConfig_MalformedFile(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)
	f.writeConfig(t, "broken.json", `{"broken`)

	// Act
	resp, err := http.Get(f.server.URL + "/api/configs/broken.json")

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetConfig_PathEscapeRejected(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)

	// Act: chi keeps the encoded dots in the route param.
	resp, err := http.Get(f.server.URL + "/api/configs/..%2Fsecrets.json")

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPutConfig(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)

	req, err := http.NewRequest(http.MethodPut, f.server.URL+"/api/configs/new.json", strings.NewReader(`{"trigger_time": "2026-03-15 12:00:00"}`))
	require.NoError(t, err)

	// Act
	resp, err := http.DefaultClient.Do(req)

	// Assert: saved pretty-printed on disk.
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	raw, err := os.ReadFile(filepath.Join(f.dir, "new.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    \"trigger_time\"")
}

func TestPutConfig_MalformedBody(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t)

	req, err := http.NewRequest(http.MethodPut, f.server.URL+"/api/configs/new.json", strings.NewReader(`{"broken`))
	require.NoError(t, err)

	// Act
	resp, err := http.DefaultClient.Do(req)

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, statErr := os.Stat(filepath.Join(f.dir, "new.json"))
	assert.True(t, os.IsNotExist(statErr), "malformed body must not create a file")
}
