package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The filtering paths must reply "ignored" without ever touching the
// orchestrator, so a handler with no backing services is enough here.
func newTestServer() *Service {
	s := &Service{}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	s.app.Post("/query", s.handleQuery)
	s.app.Post("/research", s.handleResearch)

	return s
}

func postJSON(t *testing.T, s *Service, path, body string) string {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(payload)
}

func TestQueryIgnoresBotMessages(t *testing.T) {
	s := newTestServer()

	body := postJSON(t, s, "/query", `{"user_name":"alice","text":"hello","bot":true}`)

	assert.JSONEq(t, `{"status":"ignored"}`, body)
}

func TestQueryIgnoresEmptyText(t *testing.T) {
	s := newTestServer()

	for _, payload := range []string{
		`{"user_name":"alice","text":""}`,
		`{"user_name":"alice","text":"   "}`,
		`{"text":"hello"}`,
	} {
		body := postJSON(t, s, "/query", payload)
		assert.JSONEq(t, `{"status":"ignored"}`, body)
	}
}

func TestQueryIgnoresMalformedPayload(t *testing.T) {
	s := newTestServer()

	body := postJSON(t, s, "/query", `{not json`)

	assert.JSONEq(t, `{"status":"ignored"}`, body)
}

func TestResearchAppliesSameFiltering(t *testing.T) {
	s := newTestServer()

	body := postJSON(t, s, "/research", `{"user_name":"alice","text":"","bot":false}`)

	assert.JSONEq(t, `{"status":"ignored"}`, body)
}
