// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/access-service/internal/logging"
)

type fakeDB struct {
	calls int
	err   error
}

func (f *fakeDB) Statement(context.Context) sq.StatementBuilderType { return sq.StatementBuilder }
func (f *fakeDB) Ping(context.Context) error                         { return nil }
func (f *fakeDB) Close()                                             {}

func (f *fakeDB) WithTx(ctx context.Context, fn func(context.Context) error) error {
	f.calls++
	f.err = fn(ctx)
	return f.err
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		status       int
		expectedTx   bool
		expectedFail bool
	}{
		{name: "get skips transaction", method: http.MethodGet, status: http.StatusOK},
		{name: "options skips transaction", method: http.MethodOptions, status: http.StatusNoContent},
		{name: "post commits", method: http.MethodPost, status: http.StatusOK, expectedTx: true},
		{name: "post rolls back on client error", method: http.MethodPost, status: http.StatusBadRequest, expectedTx: true, expectedFail: true},
		{name: "delete rolls back on server error", method: http.MethodDelete, status: http.StatusInternalServerError, expectedTx: true, expectedFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(fakeDB)

			handler := TransactionMiddleware(db, logging.NewNoopLogger())(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tt.status)
				}),
			)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, "/", nil))

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}

			if (db.calls == 1) != tt.expectedTx {
				t.Errorf("expected transaction %v, got %d calls", tt.expectedTx, db.calls)
			}

			if (db.err != nil) != tt.expectedFail {
				t.Errorf("expected transaction failure %v, got %v", tt.expectedFail, db.err)
			}
		})
	}
}
