package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"follower_bot/shared"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_platform.go -package mocks follower_bot/logic IPlatform

// IPlatform is the remote code-hosting platform, seen from the authenticated user's side.
// GetStargazers returns one page (1-based) of StargazerPageSize logins; a shorter page is the last one.
type IPlatform interface {
	WhoAmI(ctx context.Context) (string, error)
	GetFollowers(ctx context.Context) ([]string, error)
	GetFollowing(ctx context.Context) ([]string, error)
	Follow(ctx context.Context, login string) error
	Unfollow(ctx context.Context, login string) error
	GetStargazers(ctx context.Context, repo string, page int) ([]string, error)
	StarRepo(ctx context.Context, repo string) error
}

const StargazerPageSize = githubPageSize

const (
	githubPageSize   = 100
	githubApiVersion = "2022-11-28"
	apiTimeoutSec    = 30
	maxReadRetries   = 3
	jsonContentType  = "application/json"
)

// ApiError is a non-success response from the platform.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

type githubUser struct {
	Login string `json:"login"`
}

type githubClient struct {
	logger     shared.ILogger
	metrics    IMetrics
	client     *resty.Client
	newBackOff func() backoff.BackOff
	muSelf     sync.Mutex
	self       string
}

func NewGitHubClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IPlatform {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.GitHubApiUrl, "/")).
		SetTimeout(apiTimeoutSec*time.Second).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", githubApiVersion).
		SetHeader("User-Agent", userAgent.Value())
	if cfg.Secrets.GitHubToken != "" {
		client.SetAuthToken(cfg.Secrets.GitHubToken)
	}
	return &githubClient{
		logger:  logger,
		metrics: metrics,
		client:  client,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// WhoAmI returns the authenticated login; the first successful answer is cached.
func (gc *githubClient) WhoAmI(ctx context.Context) (string, error) {

	gc.muSelf.Lock()
	defer gc.muSelf.Unlock()

	if gc.self != "" {
		return gc.self, nil
	}
	var user githubUser
	err := gc.read(ctx, "user", func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&user).ForceContentType(jsonContentType).Get("/user")
	})
	if err != nil {
		return "", err
	}
	if user.Login == "" {
		return "", errors.New("authenticated user has no login")
	}
	gc.self = user.Login
	return gc.self, nil
}

func (gc *githubClient) GetFollowers(ctx context.Context) ([]string, error) {
	return gc.getLogins(ctx, "followers", "/user/followers")
}

func (gc *githubClient) GetFollowing(ctx context.Context) ([]string, error) {
	return gc.getLogins(ctx, "following", "/user/following")
}

func (gc *githubClient) GetStargazers(ctx context.Context, repo string, page int) ([]string, error) {
	path, err := repoPath("/repos", repo, "/stargazers")
	if err != nil {
		return nil, err
	}
	return gc.getPage(ctx, "stargazers", path, page)
}

func (gc *githubClient) Follow(ctx context.Context, login string) error {
	if err := shared.ValidateLogin(login); err != nil {
		return err
	}
	return gc.mutate(ctx, "follow", http.MethodPut, "/user/following/"+url.PathEscape(login))
}

func (gc *githubClient) Unfollow(ctx context.Context, login string) error {
	if err := shared.ValidateLogin(login); err != nil {
		return err
	}
	return gc.mutate(ctx, "unfollow", http.MethodDelete, "/user/following/"+url.PathEscape(login))
}

func (gc *githubClient) StarRepo(ctx context.Context, repo string) error {
	path, err := repoPath("/user/starred", repo, "")
	if err != nil {
		return err
	}
	return gc.mutate(ctx, "star", http.MethodPut, path)
}

func repoPath(prefix, repo, suffix string) (string, error) {
	owner, name, err := shared.SplitRepoName(repo)
	if err != nil {
		return "", err
	}
	return prefix + "/" + url.PathEscape(owner) + "/" + url.PathEscape(name) + suffix, nil
}

// getLogins walks a paged user list until a short page.
func (gc *githubClient) getLogins(ctx context.Context, label, path string) ([]string, error) {
	res := []string{}
	for page := 1; ; page++ {
		logins, err := gc.getPage(ctx, label, path, page)
		if err != nil {
			return nil, err
		}
		res = append(res, logins...)
		if len(logins) < githubPageSize {
			return res, nil
		}
	}
}

// getPage fetches one page of a user list. The body is decoded as JSON whatever its declared type.
func (gc *githubClient) getPage(ctx context.Context, label, path string, page int) ([]string, error) {
	var users []githubUser
	err := gc.read(ctx, label, func(req *resty.Request) (*resty.Response, error) {
		users = nil
		return req.SetResult(&users).
			ForceContentType(jsonContentType).
			SetQueryParam("per_page", strconv.Itoa(githubPageSize)).
			SetQueryParam("page", strconv.Itoa(page)).
			Get(path)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s (page %d): %w", label, page, err)
	}
	logins := make([]string, 0, len(users))
	for _, u := range users {
		logins = append(logins, u.Login)
	}
	return logins, nil
}

// read issues a GET, retrying on network errors and 5xx responses.
func (gc *githubClient) read(
	ctx context.Context,
	label string,
	do func(req *resty.Request) (*resty.Response, error),
) error {

	obs := gc.metrics.StartApiRequestOut(label)
	defer obs.Finish()

	policy := backoff.WithContext(backoff.WithMaxRetries(gc.newBackOff(), maxReadRetries), ctx)
	return backoff.Retry(func() error {
		resp, err := do(gc.client.R().SetContext(ctx))
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			gc.logger.Warnf("GitHub %s request failed; may retry: %v", label, err)
			return err
		}
		if err = classifyResponse(resp); err != nil {
			var apiErr *ApiError
			if errors.As(err, &apiErr) && apiErr.StatusCode >= 500 {
				gc.logger.Warnf("GitHub %s request failed; may retry: %v", label, err)
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}, policy)
}

// mutate issues a single state-changing request. Never retried.
func (gc *githubClient) mutate(ctx context.Context, label, method, path string) error {

	obs := gc.metrics.StartApiRequestOut(label)
	defer obs.Finish()

	resp, err := gc.client.R().SetContext(ctx).Execute(method, path)
	if err != nil {
		return err
	}
	return classifyResponse(resp)
}

func classifyResponse(resp *resty.Response) error {
	if resp.StatusCode() < 300 {
		return nil
	}
	msg := resp.Status()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		msg = body.Message
	}
	return &ApiError{StatusCode: resp.StatusCode(), Message: msg}
}
