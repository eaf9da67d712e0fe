package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListProjects returns a page of projects visible to the current user.
func (c *Client) ListProjects(ctx context.Context, opts ListOptions) ([]Project, error) {
	return c.listProjects(ctx, "/projects", opts)
}

// ListAllProjects returns a page of every project on the instance. Requires
// administrative privileges.
func (c *Client) ListAllProjects(ctx context.Context, opts ListOptions) ([]Project, error) {
	return c.listProjects(ctx, "/projects/all", opts)
}

// ListOwnedProjects returns a page of projects owned by the current user.
func (c *Client) ListOwnedProjects(ctx context.Context, opts ListOptions) ([]Project, error) {
	return c.listProjects(ctx, "/projects/owned", opts)
}

func (c *Client) listProjects(ctx context.Context, path string, opts ListOptions) ([]Project, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var projects []Project
	if err := c.get(ctx, path, q, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by id.
func (c *Client) GetProject(ctx context.Context, projectID int) (*Project, error) {
	var project Project
	if err := c.get(ctx, fmt.Sprintf("/projects/%d", projectID), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjectEvents returns a page of the project's activity feed.
func (c *Client) ListProjectEvents(ctx context.Context, projectID int, opts ListOptions) ([]Event, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/events", projectID), q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateProject creates a project owned by the current user. A refusal caused
// by an exhausted project quota surfaces as an error with code
// ErrCodeQuotaExceeded.
func (c *Client) CreateProject(ctx context.Context, name string, opts *CreateProjectOptions) (*Project, error) {
	if name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("name", name)

	var project Project
	if err := c.post(ctx, "/projects", form, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProjectForUser creates a project owned by another user. Requires
// administrative privileges.
func (c *Client) CreateProjectForUser(ctx context.Context, userID int, name string, opts *CreateProjectOptions) (*Project, error) {
	if name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("name", name)

	var project Project
	if err := c.post(ctx, fmt.Sprintf("/projects/user/%d", userID), form, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID int) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d", projectID), nil)
}

// SearchProjects returns a page of projects whose name matches query.
func (c *Client) SearchProjects(ctx context.Context, query string, opts ListOptions) ([]Project, error) {
	if query == "" {
		return nil, newInvalidInputError("query", "cannot be empty")
	}
	return c.listProjects(ctx, "/projects/search/"+url.PathEscape(query), opts)
}

// ListProjectMembers returns a page of project members, optionally filtered
// by name.
func (c *Client) ListProjectMembers(ctx context.Context, projectID int, opts ListMembersOptions) ([]Member, error) {
	opts.ListOptions = opts.ListOptions.withDefaults()
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	var members []Member
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/members", projectID), q, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddProjectMember adds a user to the project at the given access level.
// Levels outside the defined set are rejected before the request is made.
func (c *Client) AddProjectMember(ctx context.Context, projectID, userID int, level AccessLevel) (*Member, error) {
	if err := checkAccessLevel(level); err != nil {
		return nil, err
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("user_id", strconv.Itoa(userID))
	form.Set("access_level", strconv.Itoa(int(level)))

	var member Member
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/members", projectID), form, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// EditProjectMember changes an existing member's access level.
func (c *Client) EditProjectMember(ctx context.Context, projectID, userID int, level AccessLevel) (*Member, error) {
	if err := checkAccessLevel(level); err != nil {
		return nil, err
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("access_level", strconv.Itoa(int(level)))

	var member Member
	if err := c.put(ctx, fmt.Sprintf("/projects/%d/members/%d", projectID, userID), form, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveProjectMember removes a user from the project.
func (c *Client) RemoveProjectMember(ctx context.Context, projectID, userID int) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d/members/%d", projectID, userID), nil)
}

// ListProjectHooks returns a page of the project's webhooks.
func (c *Client) ListProjectHooks(ctx context.Context, projectID int, opts ListOptions) ([]Hook, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var hooks []Hook
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/hooks", projectID), q, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

// GetProjectHook returns a single project webhook by id.
func (c *Client) GetProjectHook(ctx context.Context, projectID, hookID int) (*Hook, error) {
	var hook Hook
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/hooks/%d", projectID, hookID), nil, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// AddProjectHook registers a webhook on the project.
func (c *Client) AddProjectHook(ctx context.Context, projectID int, hookURL string) (*Hook, error) {
	if hookURL == "" {
		return nil, newInvalidInputError("url", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("url", hookURL)

	var hook Hook
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/hooks", projectID), form, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// EditProjectHook changes the URL of an existing project webhook.
func (c *Client) EditProjectHook(ctx context.Context, projectID, hookID int, hookURL string) (*Hook, error) {
	if hookURL == "" {
		return nil, newInvalidInputError("url", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("url", hookURL)

	var hook Hook
	if err := c.put(ctx, fmt.Sprintf("/projects/%d/hooks/%d", projectID, hookID), form, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// DeleteProjectHook removes a webhook from the project.
func (c *Client) DeleteProjectHook(ctx context.Context, projectID, hookID int) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d/hooks/%d", projectID, hookID), nil)
}

// ListDeployKeys returns a page of the project's deploy keys.
func (c *Client) ListDeployKeys(ctx context.Context, projectID int, opts ListOptions) ([]SSHKey, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var keys []SSHKey
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/keys", projectID), q, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// GetDeployKey returns a single deploy key by id.
func (c *Client) GetDeployKey(ctx context.Context, projectID, keyID int) (*SSHKey, error) {
	var key SSHKey
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/keys/%d", projectID, keyID), nil, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// AddDeployKey grants a read-only SSH key access to the project repository.
func (c *Client) AddDeployKey(ctx context.Context, projectID int, title, key string) (*SSHKey, error) {
	if title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}
	if key == "" {
		return nil, newInvalidInputError("key", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("title", title)
	form.Set("key", key)

	var created SSHKey
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/keys", projectID), form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteDeployKey removes a deploy key from the project.
func (c *Client) DeleteDeployKey(ctx context.Context, projectID, keyID int) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d/keys/%d", projectID, keyID), nil)
}

// ForkProject forks a project into the current user's namespace. The remote
// side answers with the existing project payload, not a 201.
func (c *Client) ForkProject(ctx context.Context, projectID int) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/fork/%d", projectID), nil, url.Values{}, http.StatusOK, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateForkRelation marks projectID as a fork of forkedFromID without
// copying anything. Requires administrative privileges.
func (c *Client) CreateForkRelation(ctx context.Context, projectID, forkedFromID int) error {
	return c.post(ctx, fmt.Sprintf("/projects/%d/fork/%d", projectID, forkedFromID), url.Values{}, nil)
}

// RemoveForkRelation clears the fork relationship of the project.
func (c *Client) RemoveForkRelation(ctx context.Context, projectID int) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d/fork", projectID), nil)
}

// SetGitLabCIService enables the GitLab CI service on the project, pointing
// it at the given CI coordinator.
func (c *Client) SetGitLabCIService(ctx context.Context, projectID int, token, projectURL string) error {
	if token == "" {
		return newInvalidInputError("token", "cannot be empty")
	}
	if projectURL == "" {
		return newInvalidInputError("project_url", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return err
	}
	form.Set("token", token)
	form.Set("project_url", projectURL)

	return c.put(ctx, fmt.Sprintf("/projects/%d/services/gitlab-ci", projectID), form, nil)
}

// DeleteGitLabCIService disables the GitLab CI service on the project.
func (c *Client) DeleteGitLabCIService(ctx context.Context, projectID int) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%d/services/gitlab-ci", projectID), nil)
}
