// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pending

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// CookieName is the browser persisted key holding the pending code.
const CookieName = "pending_org_code"

const cookieMaxAge = 30 * 24 * time.Hour

var _ SlotInterface = (*CookieSlot)(nil)

// CookieSlot keeps the pending code in a browser cookie. It is bound to a
// single request: reads see the request cookie, or the last write made
// through the slot during that request.
type CookieSlot struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	code    string
	written bool
}

func (s *CookieSlot) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current()
}

func (s *CookieSlot) current() (string, error) {
	if s.written {
		return s.code, nil
	}

	c, err := s.r.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return url.QueryUnescape(c.Value)
}

func (s *CookieSlot) Set(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.write(code, int(cookieMaxAge.Seconds()))
	return nil
}

func (s *CookieSlot) CompareAndClear(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current()
	if err != nil {
		return false, err
	}
	if current == "" || current != code {
		return false, nil
	}

	s.write("", -1)
	return true, nil
}

func (s *CookieSlot) write(code string, maxAge int) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(code),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	s.code = code
	s.written = true
}

func NewCookieSlot(w http.ResponseWriter, r *http.Request, secure bool) *CookieSlot {
	s := new(CookieSlot)
	s.w = w
	s.r = r
	s.secure = secure

	return s
}
