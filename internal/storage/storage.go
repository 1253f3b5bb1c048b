// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/access-service/internal/db"
	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var organizationColumns = []string{"id", "name", "code", "type", "admin_email", "created_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfileByUserID")
	defer span.End()

	var p types.Profile
	err := s.db.Statement(ctx).
		Select("id", "user_id", "organization_id", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.UserID, &p.OrganizationID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// CreateProfile inserts an empty profile for userID, returning the existing
// row when the user already has one.
func (s *Storage) CreateProfile(ctx context.Context, userID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "user_id").
		Values(id.String(), userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to insert profile: %w", translateError(err))
	}

	return s.GetProfileByUserID(ctx, userID)
}

// SetProfileOrganization points the profile of userID at organizationID.
// The write always sets the same target value, so repeating it is harmless.
func (s *Storage) SetProfileOrganization(ctx context.Context, userID, organizationID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetProfileOrganization")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("profiles").
		Set("organization_id", organizationID).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetOrganizationByCode(ctx context.Context, code string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByCode")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"code": code})
}

// GetOrganizationByAdminEmail returns the oldest organization administered by email.
func (s *Storage) GetOrganizationByAdminEmail(ctx context.Context, email string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByAdminEmail")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"admin_email": email})
}

func (s *Storage) getOrganization(ctx context.Context, where sq.Eq) (*types.Organization, error) {
	var o types.Organization
	err := s.db.Statement(ctx).
		Select(organizationColumns...).
		From("organizations").
		Where(where).
		OrderBy("created_at", "id").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Code, &o.Type, &o.AdminEmail, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var o types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "code", "type", "admin_email").
		Values(id.String(), org.Name, org.Code, org.Type, org.AdminEmail).
		Suffix("RETURNING id, name, code, type, admin_email, created_at").
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Code, &o.Type, &o.AdminEmail, &o.CreatedAt)

	if err != nil {
		if err := translateError(err); errors.Is(err, ErrDuplicateKey) {
			return nil, fmt.Errorf("organization code %q: %w", org.Code, err)
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) IsLegacySubscriber(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsLegacySubscriber")
	defer span.End()

	var found int
	err := s.db.Statement(ctx).
		Select("1").
		From("legacy_subscribers").
		Where(sq.Eq{"email": email}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&found)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check legacy subscriber: %w", err)
	}

	return true, nil
}

func (s *Storage) AddLegacySubscriber(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddLegacySubscriber")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("legacy_subscribers").
		Columns("email").
		Values(email).
		Suffix("ON CONFLICT (email) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to add legacy subscriber: %w", translateError(err))
	}

	return nil
}
