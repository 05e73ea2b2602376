package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"voice-tool-backend/internal/locale"
	"voice-tool-backend/internal/tool"
)

// Invoke routes one tool call: resolve the locale from the optional query
// text, look the tool up, execute, and stamp locale metadata onto the
// result. This is the outer safety net for the whole subsystem; no
// handler failure, panics included, escapes as anything but an
// error-shaped result.
func (uc *implUseCase) Invoke(ctx context.Context, toolName string, arguments map[string]any) (result tool.Result) {
	query, _ := arguments["query"].(string)
	profile := uc.resolver.Resolve(ctx, query)

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "tool: panic executing %s: %v", toolName, r)
			result = uc.errorResult(profile, fmt.Sprintf("Tool execution failed: %v", r))
		}
	}()

	handler, ok := uc.registry.Get(toolName)
	if !ok {
		uc.l.Warnf(ctx, "tool: %v: %s", tool.ErrUnknownTool, toolName)
		return uc.errorResult(profile, fmt.Sprintf("Unknown tool: %s", toolName))
	}

	uc.l.Infof(ctx, "tool: executing %s (locale=%s)", toolName, profile.Code)

	out, err := handler.Execute(ctx, profile, arguments)
	if err != nil {
		uc.l.Errorf(ctx, "tool: %s failed: %v", toolName, err)
		return uc.errorResult(profile, err.Error())
	}

	return uc.finalize(ctx, profile, out)
}

// finalize stamps locale metadata onto the handler output. Mappings get a
// language key injected; sequences are wrapped; anything else is boxed
// under a result key so the caller always receives a mapping.
func (uc *implUseCase) finalize(ctx context.Context, profile locale.Profile, out any) tool.Result {
	lang := tool.Language{Code: profile.Code, Name: profile.DisplayName}

	normalized, err := normalize(out)
	if err != nil {
		uc.l.Errorf(ctx, "tool: result not serializable: %v", err)
		return uc.errorResult(profile, "Tool produced an unserializable result")
	}

	switch v := normalized.(type) {
	case nil:
		return tool.Result{"language": lang}
	case map[string]any:
		v["language"] = lang
		return v
	case []any:
		return tool.Result{"events": v, "language": lang}
	default:
		return tool.Result{"result": v, "language": lang}
	}
}

// normalize JSON-roundtrips typed structs and slices into plain maps and
// sequences, so post-processing sees one shape regardless of which
// handler produced the output.
func normalize(out any) (any, error) {
	switch out.(type) {
	case nil:
		return nil, nil
	case map[string]any, []any:
		return out, nil
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal handler output: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to re-read handler output: %w", err)
	}
	return v, nil
}

func (uc *implUseCase) errorResult(profile locale.Profile, message string) tool.Result {
	return tool.Result{
		"error":    message,
		"language": tool.Language{Code: profile.Code, Name: profile.DisplayName},
	}
}
