package tools

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"

	"github.com/rakeshutekar/github-mcp/internal/github"
	"github.com/rakeshutekar/github-mcp/internal/registry"
)

func getFileContents(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "get_file_contents",
		Description: "Get the contents of a file or directory listing.",
		Params: ownerRepoParams(
			registry.Param{Name: "path", Type: "string", Required: true, Description: "File or directory path."},
			registry.Param{Name: "ref", Type: "string", Description: "Branch, tag or commit SHA. Defaults to the default branch."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			path := repoPath(args, "/contents/"+escapePath(args.String("path")))
			if ref := args.String("ref"); ref != "" {
				q := url.Values{}
				q.Set("ref", ref)
				path = withQuery(path, q)
			}
			return gh.Request(ctx, http.MethodGet, path, nil)
		},
	}
}

func createOrUpdateFile(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "create_or_update_file",
		Description: "Create or update a file in a repository with a commit.",
		Params: ownerRepoParams(
			registry.Param{Name: "path", Type: "string", Required: true, Description: "File path."},
			registry.Param{Name: "message", Type: "string", Required: true, Description: "Commit message."},
			registry.Param{Name: "content", Type: "string", Required: true, Description: "File content, plain text."},
			registry.Param{Name: "branch", Type: "string", Description: "Branch to commit to. Defaults to the default branch."},
			registry.Param{Name: "sha", Type: "string", Description: "Blob SHA of the file being replaced. Required by GitHub when updating."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{
				"message": args.String("message"),
				"content": base64.StdEncoding.EncodeToString([]byte(args.String("content"))),
			}
			if branch := args.String("branch"); branch != "" {
				body["branch"] = branch
			}
			if sha := args.String("sha"); sha != "" {
				body["sha"] = sha
			}
			path := repoPath(args, "/contents/"+escapePath(args.String("path")))
			return gh.Request(ctx, http.MethodPut, path, body)
		},
	}
}

func deleteFile(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "delete_file",
		Description: "Delete a file from a repository with a commit.",
		Params: ownerRepoParams(
			registry.Param{Name: "path", Type: "string", Required: true, Description: "File path."},
			registry.Param{Name: "message", Type: "string", Required: true, Description: "Commit message."},
			registry.Param{Name: "sha", Type: "string", Required: true, Description: "Blob SHA of the file being deleted."},
			registry.Param{Name: "branch", Type: "string", Description: "Branch to commit to. Defaults to the default branch."},
		),
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			body := map[string]any{
				"message": args.String("message"),
				"sha":     args.String("sha"),
			}
			if branch := args.String("branch"); branch != "" {
				body["branch"] = branch
			}
			path := repoPath(args, "/contents/"+escapePath(args.String("path")))
			return gh.Request(ctx, http.MethodDelete, path, body)
		},
	}
}
