package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rakeshutekar/github-mcp/internal/github"
	"github.com/rakeshutekar/github-mcp/internal/registry"
)

func listRepositories(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "list_repositories",
		Description: "List repositories of the authenticated user.",
		Params: append([]registry.Param{
			{Name: "sort", Type: "string", Description: "Sort field: created, updated, pushed or full_name. Default updated."},
			{Name: "visibility", Type: "string", Description: "Filter: all, public or private. Default all."},
		}, pageParams()...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			q := pageQuery(args)
			q.Set("sort", args.StringOr("sort", "updated"))
			q.Set("visibility", args.StringOr("visibility", "all"))
			return gh.Request(ctx, http.MethodGet, withQuery("/user/repos", q), nil)
		},
	}
}

func getRepository(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "get_repository",
		Description: "Get a repository by owner and name.",
		Params:      ownerRepoParams(),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return gh.Request(ctx, http.MethodGet, repoPath(args, ""), nil)
		},
	}
}

func createRepository(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "create_repository",
		Description: "Create a repository for the authenticated user.",
		Params: []registry.Param{
			{Name: "name", Type: "string", Required: true, Description: "Repository name."},
			{Name: "description", Type: "string", Description: "Repository description."},
			{Name: "private", Type: "boolean", Description: "Create as private. Default false."},
			{Name: "auto_init", Type: "boolean", Description: "Initialize with an empty README. Default false."},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{
				"name":      args.String("name"),
				"private":   args.Bool("private", false),
				"auto_init": args.Bool("auto_init", false),
			}
			if args.Has("description") {
				body["description"] = args.String("description")
			}
			return gh.Request(ctx, http.MethodPost, "/user/repos", body)
		},
	}
}

func deleteRepository(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "delete_repository",
		Description: "Delete a repository. The token needs the delete_repo scope.",
		Params:      ownerRepoParams(),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			raw, err := gh.Request(ctx, http.MethodDelete, repoPath(args, ""), nil)
			if err != nil {
				return nil, err
			}
			if raw == nil {
				// GitHub answers 204; give the caller something concrete.
				return map[string]any{
					"deleted":    true,
					"repository": fmt.Sprintf("%s/%s", args.String("owner"), args.String("repo")),
				}, nil
			}
			return raw, nil
		},
	}
}

func forkRepository(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "fork_repository",
		Description: "Fork a repository to the authenticated user or an organization.",
		Params: ownerRepoParams(
			registry.Param{Name: "organization", Type: "string", Description: "Organization to fork into. Defaults to the user."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			var body map[string]any
			if org := args.String("organization"); org != "" {
				body = map[string]any{"organization": org}
			}
			return gh.Request(ctx, http.MethodPost, repoPath(args, "/forks"), body)
		},
	}
}

func listBranches(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "list_branches",
		Description: "List branches of a repository.",
		Params:      ownerRepoParams(pageParams()...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return gh.Request(ctx, http.MethodGet, withQuery(repoPath(args, "/branches"), pageQuery(args)), nil)
		},
	}
}

func createBranch(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "create_branch",
		Description: "Create a branch pointing at an existing commit SHA.",
		Params: ownerRepoParams(
			registry.Param{Name: "branch", Type: "string", Required: true, Description: "Name of the new branch."},
			registry.Param{Name: "sha", Type: "string", Required: true, Description: "Commit SHA the branch starts from."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{
				"ref": "refs/heads/" + args.String("branch"),
				"sha": args.String("sha"),
			}
			return gh.Request(ctx, http.MethodPost, repoPath(args, "/git/refs"), body)
		},
	}
}

func listCommits(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "list_commits",
		Description: "List commits of a repository, optionally for one branch.",
		Params: ownerRepoParams(append([]registry.Param{
			{Name: "sha", Type: "string", Description: "Branch or commit SHA to start from. Defaults to the default branch."},
		}, pageParams()...)...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			q := pageQuery(args)
			if sha := args.String("sha"); sha != "" {
				q.Set("sha", sha)
			}
			return gh.Request(ctx, http.MethodGet, withQuery(repoPath(args, "/commits"), q), nil)
		},
	}
}

func getCommit(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "get_commit",
		Description: "Get a single commit including its file diff stats.",
		Params: ownerRepoParams(
			registry.Param{Name: "ref", Type: "string", Required: true, Description: "Commit SHA, branch or tag."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return gh.Request(ctx, http.MethodGet, repoPath(args, "/commits/"+url.PathEscape(args.String("ref"))), nil)
		},
	}
}
