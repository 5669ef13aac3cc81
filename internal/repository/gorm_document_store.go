package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kenyareal/internal/model"
)

type gormDocumentStore struct {
	db *gorm.DB
}

// NewGormDocumentStore stores documents in the documents table.
func NewGormDocumentStore(db *gorm.DB) DocumentStore {
	return &gormDocumentStore{db: db}
}

func (s *gormDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc model.Document
	err := s.db.WithContext(ctx).Where("`key` = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc.Value), true, nil
}

// Put upserts the document so the write is a single statement.
func (s *gormDocumentStore) Put(ctx context.Context, key string, value []byte) error {
	doc := model.Document{Key: key, Value: string(value)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
}

func (s *gormDocumentStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("`key` = ?", key).Delete(&model.Document{}).Error
}
