package utils

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrEmptyAddress      = errors.New("empty address")
	ErrIncompleteAddress = errors.New("address must include host and scheme")
)

// NormalizeBaseURL turns a configured address into a base URL without a
// trailing slash. Addresses without a scheme default to https.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrIncompleteAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}
