package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rakeshutekar/github-mcp/internal/github"
	"github.com/rakeshutekar/github-mcp/internal/registry"
)

func issuePath(args registry.Args, suffix string) string {
	return repoPath(args, fmt.Sprintf("/issues/%d%s", args.Int("issue_number", 0), suffix))
}

func issueNumberParam() registry.Param {
	return registry.Param{Name: "issue_number", Type: "number", Required: true, Description: "Issue number."}
}

func listIssues(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "list_issues",
		Description: "List issues of a repository.",
		Params: ownerRepoParams(append([]registry.Param{
			{Name: "state", Type: "string", Description: "Filter: open, closed or all. Default open."},
			{Name: "labels", Type: "string", Description: "Comma separated label names."},
		}, pageParams()...)...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			q := pageQuery(args)
			q.Set("state", args.StringOr("state", "open"))
			if labels := args.String("labels"); labels != "" {
				q.Set("labels", labels)
			}
			return gh.Request(ctx, http.MethodGet, withQuery(repoPath(args, "/issues"), q), nil)
		},
	}
}

func getIssue(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "get_issue",
		Description: "Get a single issue by number.",
		Params:      ownerRepoParams(issueNumberParam()),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return gh.Request(ctx, http.MethodGet, issuePath(args, ""), nil)
		},
	}
}

func createIssue(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "create_issue",
		Description: "Create an issue in a repository.",
		Params: ownerRepoParams(
			registry.Param{Name: "title", Type: "string", Required: true, Description: "Issue title."},
			registry.Param{Name: "body", Type: "string", Description: "Issue body, markdown."},
			registry.Param{Name: "labels", Type: "array", Description: "Label names to apply."},
			registry.Param{Name: "assignees", Type: "array", Description: "Logins to assign."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{"title": args.String("title")}
			if args.Has("body") {
				body["body"] = args.String("body")
			}
			if labels := args.Strings("labels"); len(labels) > 0 {
				body["labels"] = labels
			}
			if assignees := args.Strings("assignees"); len(assignees) > 0 {
				body["assignees"] = assignees
			}
			return gh.Request(ctx, http.MethodPost, repoPath(args, "/issues"), body)
		},
	}
}

func updateIssue(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "update_issue",
		Description: "Update an issue's title, body, state or labels.",
		Params: ownerRepoParams(
			issueNumberParam(),
			registry.Param{Name: "title", Type: "string", Description: "New title."},
			registry.Param{Name: "body", Type: "string", Description: "New body."},
			registry.Param{Name: "state", Type: "string", Description: "open or closed."},
			registry.Param{Name: "labels", Type: "array", Description: "Replacement label set."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{}
			if args.Has("title") {
				body["title"] = args.String("title")
			}
			if args.Has("body") {
				body["body"] = args.String("body")
			}
			if state := args.String("state"); state != "" {
				body["state"] = state
			}
			if args.Has("labels") {
				body["labels"] = args.Strings("labels")
			}
			return gh.Request(ctx, http.MethodPatch, issuePath(args, ""), body)
		},
	}
}

func addIssueComment(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "add_issue_comment",
		Description: "Add a comment to an issue or pull request.",
		Params: ownerRepoParams(
			issueNumberParam(),
			registry.Param{Name: "body", Type: "string", Required: true, Description: "Comment body, markdown."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{"body": args.String("body")}
			return gh.Request(ctx, http.MethodPost, issuePath(args, "/comments"), body)
		},
	}
}

func listIssueComments(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "list_issue_comments",
		Description: "List comments on an issue or pull request.",
		Params:      ownerRepoParams(append([]registry.Param{issueNumberParam()}, pageParams()...)...),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			return gh.Request(ctx, http.MethodGet, withQuery(issuePath(args, "/comments"), pageQuery(args)), nil)
		},
	}
}
