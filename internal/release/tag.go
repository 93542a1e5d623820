// Package release fetches the ferrite binary straight from its release
// host, bypassing the package registry entirely.
package release

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"time"
)

// ErrVersionDiscovery is returned when the latest release tag cannot
// be determined. Fatal to the downloader; there is nothing to fetch.
var ErrVersionDiscovery = errors.New("could not determine latest release version")

// DiscoveryTimeout bounds the tag-discovery request. The asset
// transfer itself is deliberately unbounded (see the transfer tools).
const DiscoveryTimeout = 30 * time.Second

// LatestTag resolves the newest release tag by requesting the host's
// well-known "latest release" URL and taking the tag component of the
// URL the redirects land on. No response body is parsed.
func LatestTag(client *http.Client, baseURL, repo string) (string, error) {
	url := fmt.Sprintf("%s/%s/releases/latest", baseURL, repo)

	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrVersionDiscovery, err)
	}
	defer resp.Body.Close()

	tag := path.Base(resp.Request.URL.Path)
	if tag == "" || tag == "." || tag == "/" || tag == "latest" {
		return "", fmt.Errorf("%w: %s did not redirect to a tagged release", ErrVersionDiscovery, url)
	}
	return tag, nil
}
