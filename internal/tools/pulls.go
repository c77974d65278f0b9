package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rakeshutekar/github-mcp/internal/github"
	"github.com/rakeshutekar/github-mcp/internal/registry"
)

func pullPath(args registry.Args, suffix string) string {
	return repoPath(args, fmt.Sprintf("/pulls/%d%s", args.Int("pull_number", 0), suffix))
}

func pullNumberParam() registry.Param {
	return registry.Param{Name: "pull_number", Type: "number", Required: true, Description: "Pull request number."}
}

func listPullRequests(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "list_pull_requests",
		Description: "List pull requests of a repository.",
		Params: ownerRepoParams(append([]registry.Param{
			{Name: "state", Type: "string", Description: "Filter: open, closed or all. Default open."},
			{Name: "base", Type: "string", Description: "Filter by base branch."},
		}, pageParams()...)...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			q := pageQuery(args)
			q.Set("state", args.StringOr("state", "open"))
			if base := args.String("base"); base != "" {
				q.Set("base", base)
			}
			return gh.Request(ctx, http.MethodGet, withQuery(repoPath(args, "/pulls"), q), nil)
		},
	}
}

func getPullRequest(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "get_pull_request",
		Description: "Get a single pull request by number.",
		Params:      ownerRepoParams(pullNumberParam()),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return gh.Request(ctx, http.MethodGet, pullPath(args, ""), nil)
		},
	}
}

func createPullRequest(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "create_pull_request",
		Description: "Open a pull request.",
		Params: ownerRepoParams(
			registry.Param{Name: "title", Type: "string", Required: true, Description: "Pull request title."},
			registry.Param{Name: "head", Type: "string", Required: true, Description: "Branch with the changes."},
			registry.Param{Name: "base", Type: "string", Required: true, Description: "Branch to merge into."},
			registry.Param{Name: "body", Type: "string", Description: "Pull request description, markdown."},
			registry.Param{Name: "draft", Type: "boolean", Description: "Open as draft. Default false."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{
				"title": args.String("title"),
				"head":  args.String("head"),
				"base":  args.String("base"),
				"draft": args.Bool("draft", false),
			}
			if args.Has("body") {
				body["body"] = args.String("body")
			}
			return gh.Request(ctx, http.MethodPost, repoPath(args, "/pulls"), body)
		},
	}
}

func mergePullRequest(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "merge_pull_request",
		Description: "Merge a pull request.",
		Params: ownerRepoParams(
			pullNumberParam(),
			registry.Param{Name: "commit_title", Type: "string", Description: "Title of the merge commit."},
			registry.Param{Name: "commit_message", Type: "string", Description: "Body of the merge commit."},
			registry.Param{Name: "merge_method", Type: "string", Description: "merge, squash or rebase. Default merge."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{"merge_method": args.StringOr("merge_method", "merge")}
			if args.Has("commit_title") {
				body["commit_title"] = args.String("commit_title")
			}
			if args.Has("commit_message") {
				body["commit_message"] = args.String("commit_message")
			}
			return gh.Request(ctx, http.MethodPut, pullPath(args, "/merge"), body)
		},
	}
}

func listPullRequestFiles(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "list_pull_request_files",
		Description: "List the files changed by a pull request.",
		Params:      ownerRepoParams(append([]registry.Param{pullNumberParam()}, pageParams()...)...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return gh.Request(ctx, http.MethodGet, withQuery(pullPath(args, "/files"), pageQuery(args)), nil)
		},
	}
}
