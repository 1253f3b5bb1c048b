// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope returned by every API handler.
type Response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

// WriteResponse encodes a Response with the given status code.
func WriteResponse(w http.ResponseWriter, status int, data interface{}, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(
		Response{
			Data:    data,
			Message: message,
			Status:  status,
		},
	)
}

// WriteError encodes an error Response carrying no data.
func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteResponse(w, status, nil, message)
}
