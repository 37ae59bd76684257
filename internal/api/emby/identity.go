package emby

import "context"

// resolveUserID lazily discovers a usable account id by taking the first
// entry of the accounts listing. The result is memoized for the client's
// lifetime; a failed or empty resolution is never cached, so every later
// call retries until one succeeds. Item-detail lookups use the id to hit
// the per-account endpoint variant.
func (c *Client) resolveUserID(ctx context.Context) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.userID != "" {
		return c.userID, true
	}

	var users []apiUser
	if apiErr := c.getJSON(ctx, "/Users", nil, &users); apiErr != nil {
		return "", false
	}
	if len(users) == 0 || users[0].ID == "" {
		return "", false
	}

	c.userID = users[0].ID
	return c.userID, true
}
