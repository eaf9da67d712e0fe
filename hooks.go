package gitlab

import (
	"context"
	"fmt"
)

// ListSystemHooks returns a page of the instance-wide hooks. Requires
// administrative privileges.
func (c *Client) ListSystemHooks(ctx context.Context, opts ListOptions) ([]SystemHook, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var hooks []SystemHook
	if err := c.get(ctx, "/hooks", q, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

// AddSystemHook registers an instance-wide hook. Requires administrative
// privileges.
func (c *Client) AddSystemHook(ctx context.Context, hookURL string) (*SystemHook, error) {
	if hookURL == "" {
		return nil, newInvalidInputError("url", "cannot be empty")
	}

	form, err := formValues(nil)
	if err != nil {
		return nil, err
	}
	form.Set("url", hookURL)

	var hook SystemHook
	if err := c.post(ctx, "/hooks", form, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// TestSystemHook asks the instance to fire a test event at the hook.
func (c *Client) TestSystemHook(ctx context.Context, hookID int) error {
	return c.get(ctx, fmt.Sprintf("/hooks/%d", hookID), nil, nil)
}

// DeleteSystemHook removes an instance-wide hook. Requires administrative
// privileges.
func (c *Client) DeleteSystemHook(ctx context.Context, hookID int) error {
	return c.delete(ctx, fmt.Sprintf("/hooks/%d", hookID), nil)
}
