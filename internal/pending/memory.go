// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pending

import (
	"context"
	"sync"
)

var _ SlotInterface = (*MemorySlot)(nil)

// MemorySlot is a process local slot shared by reference between the
// capture and attach routines of one client.
type MemorySlot struct {
	mu   sync.Mutex
	code string
}

func (s *MemorySlot) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.code, nil
}

func (s *MemorySlot) Set(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.code = code
	return nil
}

func (s *MemorySlot) CompareAndClear(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.code == "" || s.code != code {
		return false, nil
	}

	s.code = ""
	return true, nil
}

func NewMemorySlot() *MemorySlot {
	return new(MemorySlot)
}
