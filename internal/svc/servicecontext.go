package svc

import (
	"fmt"

	"github.com/rakeshutekar/github-mcp/internal/config"
	"github.com/rakeshutekar/github-mcp/internal/github"
	"github.com/rakeshutekar/github-mcp/internal/registry"
	"github.com/rakeshutekar/github-mcp/internal/session"
	"github.com/rakeshutekar/github-mcp/internal/tools"

	"github.com/zeromicro/go-zero/core/logx"
)

// ServiceContext wires the long-lived collaborators: one GitHub client, one
// immutable operation registry, one session manager. Built once at startup
// and shared by every handler.
type ServiceContext struct {
	Config   config.Config
	GitHub   *github.Client
	Registry *registry.Registry
	Sessions *session.Manager
}

// NewServiceContext assembles the service context from configuration.
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	gh := github.NewClient(c.GitHub.Token, &github.ClientOptions{
		BaseURL: c.GitHub.BaseURL,
		Timeout: c.GitHub.Timeout,
	})

	reg, err := registry.New(tools.Catalog(gh))
	if err != nil {
		return nil, fmt.Errorf("build operation registry: %w", err)
	}

	sessions := session.NewManager(reg, &session.ManagerOptions{
		IdleTimeout:   c.Session.IdleTimeout,
		SweepInterval: c.Session.SweepInterval,
		OnCreate: func(s *session.Session) {
			logx.Infof("Session established, session_id=%s, tools=%d", s.ID, reg.Len())
		},
	})

	if !gh.HasToken() {
		logx.Errorf("GITHUB_TOKEN is not set, all tool calls will fail until it is configured")
	}

	return &ServiceContext{
		Config:   c,
		GitHub:   gh,
		Registry: reg,
		Sessions: sessions,
	}, nil
}
