// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orglink

import (
	"fmt"
	"net/url"
	"strings"
)

// CodeParam is the query parameter carrying an organization code.
const CodeParam = "org"

// InviteURL renders the invite link of an organization code on top of base.
func InviteURL(base, code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("organization code is empty")
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse invite base url: %w", err)
	}

	if !u.IsAbs() {
		return "", fmt.Errorf("invite base url %q is not absolute", base)
	}

	q := u.Query()
	q.Set(CodeParam, code)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func stripCode(u *url.URL) *url.URL {
	stripped := *u

	q := stripped.Query()
	q.Del(CodeParam)
	stripped.RawQuery = q.Encode()

	return &stripped
}

// localRedirect renders u as a location on the current host. Leading slashes
// and backslashes collapse into one, so the location never names a host.
func localRedirect(u *url.URL) string {
	local := url.URL{
		Path:     "/" + strings.TrimLeft(u.Path, `/\`),
		RawQuery: u.RawQuery,
	}

	return local.RequestURI()
}
