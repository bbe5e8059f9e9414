package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/persistence/models"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// GormStore persists documents in the user_preferences table.
type GormStore struct {
	db     *gorm.DB
	logger logger.Interface
	now    func() time.Time
}

func NewGormStore(db *gorm.DB, logger logger.Interface) *GormStore {
	return &GormStore{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *GormStore) Get(ctx context.Context, token string) (preference.Document, error) {
	var model models.UserPreferenceModel

	err := s.db.WithContext(ctx).
		Where("identity_token = ?", token).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return preference.DefaultDocument(), nil
		}
		s.logger.Errorw("failed to get settings", "error", err)
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return preference.Document(model.Document), nil
}

// Put upserts the row, overwriting document and updated_at on conflict.
func (s *GormStore) Put(ctx context.Context, token string, doc preference.Document) error {
	model := &models.UserPreferenceModel{
		IdentityToken: token,
		Document:      datatypes.JSON(doc),
		UpdatedAt:     s.now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		s.logger.Errorw("failed to upsert settings", "error", err)
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}
