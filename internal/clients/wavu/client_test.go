package wavu_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FottenSC/FrameData/internal/clients/wavu"
	"github.com/FottenSC/FrameData/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) wavu.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := wavu.New(&wavu.Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		cfg := &wavu.Config{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://wavu.wiki/w/api.php", cfg.BaseURL)
		assert.NotEmpty(t, cfg.UserAgent)
		assert.NotZero(t, cfg.HTTPTimeout)
	})

	t.Run("nil config rejected", func(t *testing.T) {
		var cfg *wavu.Config
		err := cfg.Validate()
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestGetMovelist(t *testing.T) {
	ctx := context.Background()

	t.Run("successful fetch", func(t *testing.T) {
		var gotQuery map[string]string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			gotQuery = map[string]string{
				"action":    q.Get("action"),
				"page":      q.Get("page"),
				"prop":      q.Get("prop"),
				"redirects": q.Get("redirects"),
			}
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			fmt.Fprint(w, `{"parse":{"title":"Alisa movelist","pageid":42,"wikitext":"{{Move|id=a}}"}}`)
		})

		out, err := client.GetMovelist(ctx, &wavu.GetMovelistInput{Character: "Alisa"})
		require.NoError(t, err)
		assert.Equal(t, "Alisa movelist", out.Page)
		assert.Equal(t, "{{Move|id=a}}", out.Wikitext)
		assert.Equal(t, map[string]string{
			"action":    "parse",
			"page":      "Alisa_movelist",
			"prop":      "wikitext",
			"redirects": "1",
		}, gotQuery)
	})

	t.Run("movelist suffix not doubled", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Devil_Jin_movelist", r.URL.Query().Get("page"))
			fmt.Fprint(w, `{"parse":{"title":"Devil Jin movelist","wikitext":""}}`)
		})

		_, err := client.GetMovelist(ctx, &wavu.GetMovelistInput{Character: "Devil_Jin_movelist"})
		require.NoError(t, err)
	})

	t.Run("missing page maps to not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error":{"code":"missingtitle","info":"The page you specified doesn't exist."}}`)
		})

		_, err := client.GetMovelist(ctx, &wavu.GetMovelistInput{Character: "Nobody"})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("other API error maps to internal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error":{"code":"ratelimited","info":"slow down"}}`)
		})

		_, err := client.GetMovelist(ctx, &wavu.GetMovelistInput{Character: "Alisa"})
		assert.True(t, errors.IsInternal(err))
	})

	t.Run("non-200 maps to unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.GetMovelist(ctx, &wavu.GetMovelistInput{Character: "Alisa"})
		assert.True(t, errors.IsUnavailable(err))
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html>not json</html>`)
		})

		_, err := client.GetMovelist(ctx, &wavu.GetMovelistInput{Character: "Alisa"})
		assert.Error(t, err)
	})

	t.Run("canceled context maps to deadline exceeded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"parse":{"title":"x","wikitext":""}}`)
		})

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := client.GetMovelist(canceled, &wavu.GetMovelistInput{Character: "Alisa"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeDeadlineExceeded, errors.GetCode(err))
	})

	t.Run("input validation", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.GetMovelist(ctx, nil)
		assert.True(t, errors.IsInvalidArgument(err))

		_, err = client.GetMovelist(ctx, &wavu.GetMovelistInput{})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
