package handler

import (
	"net/http"

	"github.com/rakeshutekar/github-mcp/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

type healthResult struct {
	Status          string `json:"status"`
	TokenConfigured bool   `json:"github_token_configured"`
	ActiveSessions  int    `json:"active_sessions"`
}

// HealthHandler is the liveness probe. It reports whether the upstream
// credential is configured without touching the GitHub API.
func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJson(w, healthResult{
			Status:          "ok",
			TokenConfigured: svcCtx.GitHub.HasToken(),
			ActiveSessions:  svcCtx.Sessions.Len(),
		})
	}
}
