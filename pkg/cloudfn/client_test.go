package cloudfn_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"voice-tool-backend/pkg/cloudfn"
)

func TestCall(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if r.URL.Query().Get("language") != "en" {
				t.Errorf("expected language param, got %q", r.URL.Query().Get("language"))
			}
			w.Write([]byte(`{"appointment": "2024-05-02T10:00:00+05:30"}`))
		case "/fail":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`upstream exploded`))
		case "/garbage":
			w.Write([]byte(`<html>not json</html>`))
		}
	}))
	defer ts.Close()

	client := cloudfn.NewClient(5 * time.Second)
	ctx := context.Background()

	t.Run("successful call", func(t *testing.T) {
		params := url.Values{}
		params.Set("language", "en")
		got, err := client.Call(ctx, ts.URL+"/ok", params)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got["appointment"] != "2024-05-02T10:00:00+05:30" {
			t.Errorf("unexpected payload: %v", got)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		if _, err := client.Call(ctx, ts.URL+"/fail", nil); err == nil {
			t.Error("expected error for 502 response")
		}
	})

	t.Run("non-JSON body", func(t *testing.T) {
		if _, err := client.Call(ctx, ts.URL+"/garbage", nil); err == nil {
			t.Error("expected error for non-JSON body")
		}
	})
}
