// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("lvl")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WarnLevel(t *testing.T) {
	NewClientLogger("client")
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("should go nowhere")
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := &Logger{zerolog.New(&parentBuf)}

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf).With().Str("trace_id", "abc").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	assert.Equal(t, "abc", decodeEntry(t, &childBuf)["trace_id"])
	assert.NotContains(t, decodeEntry(t, &parentBuf), "trace_id")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()}

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()}

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))
	FromRequest(r).Info().Msg("from request")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}

func TestFromContext_NoLoggerIsNotNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
