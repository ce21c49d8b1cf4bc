package stayapi

import "context"

// Login issues a single POST to /auth/login. No retry policy beyond the
// transport-level one; the caller owns anything smarter.
func (c *Client) Login(ctx context.Context, email, password string) (map[string]any, error) {
	body := map[string]any{"email": email, "password": password}
	var out map[string]any
	return out, c.post(ctx, c.authBase, "/auth/login", "auth_login", "", nil, body, &out)
}

// Register issues a single POST to /auth/register. The response shape
// matches login: a nested user object plus a token.
func (c *Client) Register(ctx context.Context, fullName, email, password, phone string) (map[string]any, error) {
	body := map[string]any{"fullName": fullName, "email": email, "password": password}
	if phone != "" {
		body["phone"] = phone
	}
	var out map[string]any
	return out, c.post(ctx, c.authBase, "/auth/register", "auth_register", "", nil, body, &out)
}
