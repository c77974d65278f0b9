// Package tools declares the GitHub operation catalog: one descriptor per
// invokable operation, each a one-to-one translation to a GitHub REST call
// through the injected client. The catalog is assembled once at startup and
// shared read-only across sessions.
package tools

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rakeshutekar/github-mcp/internal/github"
	"github.com/rakeshutekar/github-mcp/internal/registry"
)

// Catalog returns every operation descriptor in its stable discovery order.
func Catalog(gh *github.Client) []registry.Descriptor {
	return []registry.Descriptor{
		getUser(gh),

		listRepositories(gh),
		getRepository(gh),
		createRepository(gh),
		deleteRepository(gh),
		forkRepository(gh),
		listBranches(gh),
		createBranch(gh),
		listCommits(gh),
		getCommit(gh),

		getFileContents(gh),
		createOrUpdateFile(gh),
		deleteFile(gh),

		listIssues(gh),
		getIssue(gh),
		createIssue(gh),
		updateIssue(gh),
		addIssueComment(gh),
		listIssueComments(gh),

		listPullRequests(gh),
		getPullRequest(gh),
		createPullRequest(gh),
		mergePullRequest(gh),
		listPullRequestFiles(gh),

		searchRepositories(gh),
		searchCode(gh),
	}
}

func getUser(gh *github.Client) registry.Descriptor {
	return registry.Descriptor{
		Name:        "github_get_user",
		Description: "Get the authenticated user, or a named user when username is given.",
		Params: []registry.Param{
			{Name: "username", Type: "string", Description: "User login to look up. Defaults to the authenticated user."},
		},
		Handler: func(ctx context.Context, args registry.Args) (any, error) {
			path := "/user"
			if username := args.String("username"); username != "" {
				path = "/users/" + url.PathEscape(username)
			}
			return gh.Request(ctx, http.MethodGet, path, nil)
		},
	}
}

// ownerRepoParams prefixes the owner/repo pair every repository-scoped
// operation requires.
func ownerRepoParams(extra ...registry.Param) []registry.Param {
	params := []registry.Param{
		{Name: "owner", Type: "string", Required: true, Description: "Repository owner."},
		{Name: "repo", Type: "string", Required: true, Description: "Repository name."},
	}
	return append(params, extra...)
}

// pageParams are the shared pagination knobs of list operations.
func pageParams() []registry.Param {
	return []registry.Param{
		{Name: "per_page", Type: "number", Description: "Results per page, default 30."},
		{Name: "page", Type: "number", Description: "Page number, default 1."},
	}
}

func repoPath(args registry.Args, suffix string) string {
	return "/repos/" + url.PathEscape(args.String("owner")) + "/" + url.PathEscape(args.String("repo")) + suffix
}

func pageQuery(args registry.Args) url.Values {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(args.Int("per_page", 30)))
	q.Set("page", strconv.Itoa(args.Int("page", 1)))
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// escapePath escapes each segment of a repository file path while keeping
// the slashes that separate them.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
