package httpserver

import (
	"github.com/gin-gonic/gin"

	"voice-tool-backend/internal/middleware"
	"voice-tool-backend/pkg/response"
)

type invokeRequest struct {
	ToolName  string         `json:"tool_name" binding:"required"`
	Arguments map[string]any `json:"arguments"`
}

// invoke executes one tool call. The router guarantees a well-formed
// result for every registered or unregistered tool, so this endpoint only
// rejects transport-level problems.
func (srv HTTPServer) invoke(c *gin.Context) {
	ctx := c.Request.Context()

	var req invokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.l.Warnf(ctx, "invoke: malformed request: %v", err)
		response.BadRequest(c, err)
		return
	}
	if req.Arguments == nil {
		req.Arguments = map[string]any{}
	}

	scope := middleware.GetScope(c)
	srv.l.Infof(ctx, "invoke: %s (invocation=%s, ip=%s)", req.ToolName, scope.InvocationID, scope.ClientIP)

	result := srv.toolUC.Invoke(ctx, req.ToolName, req.Arguments)
	response.OK(c, result)
}
