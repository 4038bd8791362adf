package api

import (
	"context"
	"net/http"
)

// MockAPIGenerator hands out the same MockAPIClient for every path and keeps
// the requested paths.
type MockAPIGenerator struct {
	MockClient MockAPIClient
	Paths      []string
}

func (m *MockAPIGenerator) New(path string, args ...any) Client {
	m.Paths = append(m.Paths, formatPath(path, args...))
	if m.MockClient.Headers == nil {
		m.MockClient.Headers = make(http.Header)
	}
	return &m.MockClient
}

// MockAPIClient records what was set on it. A nil method func panics when the
// method is called, so tests notice unexpected network calls.
type MockAPIClient struct {
	POSTFunc func(ctx context.Context, opts ...Opt) (*Response, error)
	GETFunc  func(ctx context.Context, opts ...Opt) (*Response, error)
	PUTFunc  func(ctx context.Context, opts ...Opt) (*Response, error)

	Headers  http.Header
	Params   Parameter
	LastBody Body
	Calls    int
}

func (c *MockAPIClient) Header(name, value string) Client {
	if c.Headers == nil {
		c.Headers = make(http.Header)
	}
	c.Headers.Set(name, value)
	return c
}

func (c *MockAPIClient) Query(query Parameter) Client {
	c.Params = query
	return c
}

func (c *MockAPIClient) Body(body Body) Client {
	c.LastBody = body
	return c
}

func (c *MockAPIClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	c.Calls++
	if c.POSTFunc != nil {
		return c.POSTFunc(ctx, opts...)
	}

	panic("not implemented")
}

func (c *MockAPIClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.Calls++
	if c.GETFunc != nil {
		return c.GETFunc(ctx, opts...)
	}

	panic("not implemented")
}

func (c *MockAPIClient) PUT(ctx context.Context, opts ...Opt) (*Response, error) {
	c.Calls++
	if c.PUTFunc != nil {
		return c.PUTFunc(ctx, opts...)
	}

	panic("not implemented")
}
