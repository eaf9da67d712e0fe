package gitlab

import (
	"context"
	"fmt"
	"net/url"
)

// ListBranches returns a page of the project's branches.
func (c *Client) ListBranches(ctx context.Context, projectID int, opts ListOptions) ([]Branch, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var branches []Branch
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/repository/branches", projectID), q, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// GetBranch returns a single branch by name. A missing branch is reported as
// a not-found error like every other missing resource.
func (c *Client) GetBranch(ctx context.Context, projectID int, branch string) (*Branch, error) {
	if branch == "" {
		return nil, newInvalidInputError("branch", "cannot be empty")
	}

	var b Branch
	path := fmt.Sprintf("/projects/%d/repository/branches/%s", projectID, url.PathEscape(branch))
	if err := c.get(ctx, path, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBranch creates a branch pointing at ref (a branch name, tag, or
// commit SHA).
func (c *Client) CreateBranch(ctx context.Context, projectID int, branch, ref string) (*Branch, error) {
	if branch == "" {
		return nil, newInvalidInputError("branch", "cannot be empty")
	}
	if ref == "" {
		return nil, newInvalidInputError("ref", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("branch_name", branch)
	form.Set("ref", ref)

	var b Branch
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/repository/branches", projectID), form, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBranch deletes a branch.
func (c *Client) DeleteBranch(ctx context.Context, projectID int, branch string) error {
	if branch == "" {
		return newInvalidInputError("branch", "cannot be empty")
	}
	return c.delete(ctx, fmt.Sprintf("/projects/%d/repository/branches/%s", projectID, url.PathEscape(branch)), nil)
}

// ProtectBranch marks a branch as protected, restricting who may push to it.
// Protecting an already protected branch is a no-op on the remote side.
func (c *Client) ProtectBranch(ctx context.Context, projectID int, branch string) (*Branch, error) {
	return c.setBranchProtection(ctx, projectID, branch, "protect")
}

// UnprotectBranch removes the protected flag from a branch.
func (c *Client) UnprotectBranch(ctx context.Context, projectID int, branch string) (*Branch, error) {
	return c.setBranchProtection(ctx, projectID, branch, "unprotect")
}

func (c *Client) setBranchProtection(ctx context.Context, projectID int, branch, action string) (*Branch, error) {
	if branch == "" {
		return nil, newInvalidInputError("branch", "cannot be empty")
	}

	var b Branch
	path := fmt.Sprintf("/projects/%d/repository/branches/%s/%s", projectID, url.PathEscape(branch), action)
	if err := c.put(ctx, path, url.Values{}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
