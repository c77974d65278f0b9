package tools

import (
	"context"
	"net/http"

	"github.com/rakeshutekar/github-mcp/internal/github"
	"github.com/rakeshutekar/github-mcp/internal/registry"
)

func queryParam() registry.Param {
	return registry.Param{Name: "q", Type: "string", Required: true, Description: "Search query, GitHub search syntax."}
}

func searchRepositories(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "search_repositories",
		Description: "Search repositories.",
		Params:      append([]registry.Param{queryParam()}, pageParams()...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			q := pageQuery(args)
			q.Set("q", args.String("q"))
			return gh.Request(ctx, http.MethodGet, withQuery("/search/repositories", q), nil)
		},
	}
}

func searchCode(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "search_code",
		Description: "Search code across repositories.",
		Params:      append([]registry.Param{queryParam()}, pageParams()...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			q := pageQuery(args)
			q.Set("q", args.String("q"))
			return gh.Request(ctx, http.MethodGet, withQuery("/search/code", q), nil)
		},
	}
}
