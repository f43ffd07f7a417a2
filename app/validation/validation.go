// Package validation holds the stateless input validators used by the API
// boundary before anything is written to the store.
package validation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrInvalidArgument is returned for values outside a recognized token set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedURL is returned when a supplied URL is not an absolute
	// http or https URL. Distinct from "reachable but not an image".
	ErrMalformedURL = errors.New("malformed url")
)

// emailPattern must match the whole address: local part, domain and a
// two to seven letter top-level segment. Partial matches are rejected.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}$`)

// imageFetchTimeout bounds the outbound GET issued by ImageURL.
const imageFetchTimeout = 10 * time.Second

var imageClient = &http.Client{Timeout: imageFetchTimeout}

// Boolean parses v against a closed set of truthy and falsy tokens: the
// bools themselves, the numbers 1 and 0 (JSON numbers decode as float64)
// and the strings "true"/"True"/"t"/"T" and their falsy counterparts.
// Membership is exact; anything else fails with ErrInvalidArgument.
func Boolean(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int:
		if val == 1 {
			return true, nil
		}
		if val == 0 {
			return false, nil
		}
	case float64:
		if val == 1 {
			return true, nil
		}
		if val == 0 {
			return false, nil
		}
	case string:
		switch val {
		case "true", "True", "t", "T":
			return true, nil
		case "false", "False", "f", "F":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: not a recognized boolean: %v", ErrInvalidArgument, v)
}

// Email returns addr when it is a syntactically valid email address and
// the empty string when it is not. It never returns an error.
func Email(addr string) string {
	if !emailPattern.MatchString(addr) {
		return ""
	}
	return addr
}

// ImageURL fetches rawURL and sniffs the response body's binary signature.
// It returns the detected image subtype ("png", "jpeg", ...) or the empty
// string when the bytes are not a recognized image format. A URL that is
// not an absolute http(s) URL fails with ErrMalformedURL before any
// request is made. The fetch is bounded by a 10 second timeout and must
// finish before any store write is attempted.
func ImageURL(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, rawURL)
	}

	resp, err := imageClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching image url: %w", err)
	}
	defer resp.Body.Close()

	mtype, err := mimetype.DetectReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading image url response: %w", err)
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", nil
	}
	return strings.TrimPrefix(mtype.String(), "image/"), nil
}
