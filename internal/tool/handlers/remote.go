package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"voice-tool-backend/internal/locale"
	pkgLog "voice-tool-backend/pkg/log"
)

// RemoteCaller abstracts the remote-function HTTP client.
type RemoteCaller interface {
	Call(ctx context.Context, baseURL string, params url.Values) (map[string]any, error)
}

// RemoteHandler proxies one configured remote function. Arguments travel
// as query parameters, with language and language_config injected so the
// function can localize its answer.
type RemoteHandler struct {
	l       pkgLog.Logger
	name    string
	baseURL string
	client  RemoteCaller
}

// NewRemoteHandler creates a handler for one remote function endpoint.
func NewRemoteHandler(l pkgLog.Logger, name, baseURL string, client RemoteCaller) *RemoteHandler {
	return &RemoteHandler{
		l:       l,
		name:    name,
		baseURL: baseURL,
		client:  client,
	}
}

func (h *RemoteHandler) Name() string {
	return h.name
}

func (h *RemoteHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	params := url.Values{}
	for key, value := range args {
		params.Set(key, fmt.Sprintf("%v", value))
	}

	config, err := json.Marshal(map[string]string{
		"code":     profile.Code,
		"name":     profile.DisplayName,
		"timezone": profile.DefaultTimezone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal language config: %w", err)
	}
	params.Set("language", profile.Code)
	params.Set("language_config", string(config))

	h.l.Debugf(ctx, "remote: calling %s", h.name)
	return h.client.Call(ctx, h.baseURL, params)
}
