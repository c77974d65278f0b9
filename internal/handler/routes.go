package handler

import (
	"net/http"

	"github.com/rakeshutekar/github-mcp/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers mounts the protocol endpoints on the rest server.
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/mcp",
			Handler: McpInfoHandler(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/mcp",
			Handler: McpMessageHandler(svcCtx),
		},
		{
			Method:  http.MethodDelete,
			Path:    "/mcp",
			Handler: McpTerminateHandler(svcCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/health",
			Handler: HealthHandler(svcCtx),
		},
	})
}
