package tool

import "errors"

var (
	// ErrUnknownTool marks a tool name absent from the registry.
	ErrUnknownTool = errors.New("unknown tool")
)
