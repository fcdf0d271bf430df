// Package asset opens sweep definitions from local files or http(s) URLs.
package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Timeout for fetching remote definitions.
var FetchTimeout = 30 * time.Second

// A Resource is a readable definition stream. Callers must Close it.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the location this resource was opened from.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Ext returns the lowercase file extension of the resource without the
// leading dot. Remote resources use the extension of the URL path, so query
// strings do not interfere.
func (r *Resource) Ext() string {
	var p string
	if r.IsRemote() {
		p = path.Ext(r.url.Path)
	} else {
		p = filepath.Ext(r.url.Path)
	}
	return strings.ToLower(strings.TrimPrefix(p, "."))
}

// Open a definition. Paths without a scheme are read from the local
// filesystem; http and https URLs are fetched.
func NewResource(location string) (*Resource, error) {
	u, err := url.Parse(strings.Replace(location, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("asset: invalid location %q: %v", location, err)
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		f, err := os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, fmt.Errorf("asset: %w", err)
		}
		reader = f
	case "http", "https":
		client := &http.Client{Timeout: FetchTimeout}
		resp, err := client.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("asset: could not fetch '%s': %v", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("asset: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("asset: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{ReadCloser: reader, url: u}, nil
}

// Wrap an in-memory definition. The name determines the extension.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	u, err := url.Parse(name)
	if err != nil {
		u = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        u,
	}
}
