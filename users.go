package gitlab

import (
	"context"
	"fmt"
	"strconv"
)

// ListUsers returns a page of users. The search filter matches name,
// username, and email. Requires administrative privileges to see users other
// than the current one on most instances.
func (c *Client) ListUsers(ctx context.Context, opts ListUsersOptions) ([]User, error) {
	opts.ListOptions = opts.ListOptions.withDefaults()
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := c.get(ctx, "/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a single user by id.
func (c *Client) GetUser(ctx context.Context, userID int) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser returns the account the private token belongs to. When a sudo
// identity is set, it returns the impersonated account instead.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user account. Requires administrative privileges.
// The four required fields are always sent; anything in opts is passed
// through in addition and can never override them.
func (c *Client) CreateUser(ctx context.Context, name, username, password, email string, opts *CreateUserOptions) (*User, error) {
	if name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}
	if username == "" {
		return nil, newInvalidInputError("username", "cannot be empty")
	}
	if password == "" {
		return nil, newInvalidInputError("password", "cannot be empty")
	}
	if email == "" {
		return nil, newInvalidInputError("email", "cannot be empty")
	}

	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}
	form.Set("name", name)
	form.Set("username", username)
	form.Set("password", password)
	form.Set("email", email)

	var user User
	if err := c.post(ctx, "/users", form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// EditUser updates an existing user account. Requires administrative
// privileges. Only the fields set in opts are sent; a nil opts sends an
// empty update, which the remote API interprets as clearing every editable
// field.
func (c *Client) EditUser(ctx context.Context, userID int, opts *EditUserOptions) (*User, error) {
	form, err := formValues(opts)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", userID), form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user account. Requires administrative privileges.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", userID), nil)
}

// ListSSHKeys returns a page of the current user's SSH keys.
func (c *Client) ListSSHKeys(ctx context.Context, opts ListOptions) ([]SSHKey, error) {
	q, err := listQuery(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	var keys []SSHKey
	if err := c.get(ctx, "/user/keys", q, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// GetSSHKey returns one of the current user's SSH keys by id.
func (c *Client) GetSSHKey(ctx context.Context, keyID int) (*SSHKey, error) {
	var key SSHKey
	if err := c.get(ctx, fmt.Sprintf("/user/keys/%d", keyID), nil, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// AddSSHKey adds an SSH public key to the current user.
func (c *Client) AddSSHKey(ctx context.Context, title, key string) (*SSHKey, error) {
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
	if err := c.post(ctx, "/user/keys", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddUserSSHKey adds an SSH public key to another user. Requires
// administrative privileges.
func (c *Client) AddUserSSHKey(ctx context.Context, userID int, title, key string) (*SSHKey, error) {
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
	form.Set("user_id", strconv.Itoa(userID))
	form.Set("title", title)
	form.Set("key", key)

	var created SSHKey
	if err := c.post(ctx, fmt.Sprintf("/users/%d/keys", userID), form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteSSHKey removes one of the current user's SSH keys.
func (c *Client) DeleteSSHKey(ctx context.Context, keyID int) error {
	return c.delete(ctx, fmt.Sprintf("/user/keys/%d", keyID), nil)
}
