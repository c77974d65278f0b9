package config

import (
	"time"

	"github.com/zeromicro/go-zero/rest"
)

// Config is the full server configuration, loaded from a YAML file under
// etc/ with environment substitution enabled.
type Config struct {
	rest.RestConf

	GitHub  GitHubConf
	Session SessionConf
}

// GitHubConf configures the upstream API collaborator. The token comes from
// the GITHUB_TOKEN environment variable; an empty token is allowed, the
// server then starts degraded and every call fails with a credential error.
type GitHubConf struct {
	Token   string        `json:",optional,env=GITHUB_TOKEN"`
	BaseURL string        `json:",default=https://api.github.com"`
	Timeout time.Duration `json:",default=30s"`
}

// SessionConf configures session lifecycle. IdleTimeout <= 0 disables
// eviction so sessions live until explicit termination.
type SessionConf struct {
	IdleTimeout   time.Duration `json:",default=1h"`
	SweepInterval time.Duration `json:",default=5m"`
}
