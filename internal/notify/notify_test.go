// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestSeverityText(t *testing.T) {
	tests := []struct {
		text     string
		expected Severity
		err      error
	}{
		{text: "info", expected: SeverityInfo},
		{text: "success", expected: SeveritySuccess},
		{text: "error", expected: SeverityError},
		{text: "warning", err: ErrInvalidSeverity},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			var s Severity
			err := s.UnmarshalText([]byte(test.text))

			if err != test.err {
				t.Fatalf("expected error %v, got %v", test.err, err)
			}
			if err == nil && s != test.expected {
				t.Errorf("expected %v, got %v", test.expected, s)
			}
		})
	}
}

func TestNotificationJSON(t *testing.T) {
	b, err := json.Marshal(Notification{Title: "Joined organization", Severity: SeveritySuccess})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(b), `"severity":"success"`) {
		t.Errorf("expected severity to be encoded as text, got %s", b)
	}
}

func TestPrinter(t *testing.T) {
	buf := new(bytes.Buffer)
	p := NewPrinter(buf)

	p.Notify(context.Background(), Notification{
		Title:       "Organization not found",
		Description: "Please verify the link and try again.",
		Severity:    SeverityError,
	})

	out := buf.String()
	for _, s := range []string{"Organization not found", "Please verify the link", "error"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q, got %q", s, out)
		}
	}
}

func TestNotifierFunc(t *testing.T) {
	var got []Notification
	n := NotifierFunc(func(_ context.Context, notification Notification) {
		got = append(got, notification)
	})

	n.Notify(context.Background(), Notification{Title: "a"})

	if len(got) != 1 || got[0].Title != "a" {
		t.Errorf("expected notification to be forwarded, got %v", got)
	}
}
