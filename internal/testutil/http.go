// http.go
//
// A workout routine and exercise library data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of routinesdb.
// routinesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// routinesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with routinesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// Client drives a fiber app through app.Test and carries cookies between
// requests like a browser would.
type Client struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
	headers map[string]string
}

// NewClient returns a client with an empty cookie jar
func NewClient(t *testing.T, app *fiber.App) *Client {
	return &Client{
		t:       t,
		app:     app,
		cookies: make(map[string]*http.Cookie),
		headers: make(map[string]string),
	}
}

// SetHeader adds a header to every subsequent request
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// Cookie returns the current value of the named cookie
func (c *Client) Cookie(name string) string {
	if cookie, ok := c.cookies[name]; ok {
		return cookie.Value
	}
	return ""
}

// SetCookie plants a cookie, e.g. to replay a stale session
func (c *Client) SetCookie(name, value string) {
	c.cookies[name] = &http.Cookie{Name: name, Value: value}
}

// Do sends a request. A non-nil body is JSON encoded unless it is already a string.
func (c *Client) Do(method, path string, body interface{}) *http.Response {
	c.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			c.t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.app.Test(req, -1)
	if err != nil {
		c.t.Fatalf("%s %s failed: %v", method, path, err)
	}

	now := time.Now()
	for _, cookie := range resp.Cookies() {
		expired := cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(now))
		if cookie.Value == "" || expired {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}

	return resp
}

// JSON sends a request, checks the status and decodes the body into target
func (c *Client) JSON(method, path string, body interface{}, status int, target interface{}) *http.Response {
	c.t.Helper()
	resp := c.Do(method, path, body)
	AssertStatus(c.t, resp, status)
	if target != nil {
		ParseJSON(c.t, resp, target)
	}
	return resp
}
