package gitlab

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListGroups returns a page of groups visible to the current user.
func (c *Client) ListGroups(ctx context.Context, opts ListOptions) ([]Group, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var groups []Group
	if err := c.get(ctx, "/groups", q, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup returns a single group by id, including its projects.
func (c *Client) GetGroup(ctx context.Context, groupID int) (*Group, error) {
	var group Group
	if err := c.get(ctx, fmt.Sprintf("/groups/%d", groupID), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// CreateGroup creates a group. A refusal caused by an exhausted group quota
// surfaces as an error with code ErrCodeQuotaExceeded.
func (c *Client) CreateGroup(ctx context.Context, name, path string) (*Group, error) {
	if name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}
	if path == "" {
		return nil, newInvalidInputError("path", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("name", name)
	form.Set("path", path)

	var group Group
	if err := c.post(ctx, "/groups", form, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroup deletes a group.
func (c *Client) DeleteGroup(ctx context.Context, groupID int) error {
	return c.delete(ctx, fmt.Sprintf("/groups/%d", groupID), nil)
}

// TransferProjectToGroup moves a project into the group's namespace.
// Requires administrative privileges.
func (c *Client) TransferProjectToGroup(ctx context.Context, groupID, projectID int) (*Group, error) {
	var group Group
	if err := c.post(ctx, fmt.Sprintf("/groups/%d/projects/%d", groupID, projectID), url.Values{}, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// ListGroupMembers returns a page of the group's members.
func (c *Client) ListGroupMembers(ctx context.Context, groupID int, opts ListOptions) ([]Member, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var members []Member
	if err := c.get(ctx, fmt.Sprintf("/groups/%d/members", groupID), q, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddGroupMember adds a user to the group at the given access level. Levels
// outside the defined set are rejected before the request is made, the same
// way project membership rejects them.
func (c *Client) AddGroupMember(ctx context.Context, groupID, userID int, level AccessLevel) (*Member, error) {
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
	if err := c.post(ctx, fmt.Sprintf("/groups/%d/members", groupID), form, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveGroupMember removes a user from the group.
func (c *Client) RemoveGroupMember(ctx context.Context, groupID, userID int) error {
	return c.delete(ctx, fmt.Sprintf("/groups/%d/members/%d", groupID, userID), nil)
}
