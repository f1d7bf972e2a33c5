package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store ghi dữ liệu theo bảng, không gắn với model cụ thể.
// Insert chạy trong một transaction: hoặc ghi hết hoặc không ghi dòng nào.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(table string, rows []map[string]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, row := range rows {
			// Ghi qua map nên hook/timestamp của GORM không chạy, tự gán ở đây
			if _, ok := row["id"]; !ok {
				row["id"] = uuid.NewString()
			}
			if _, ok := row["created_at"]; !ok {
				row["created_at"] = now
			}
			if _, ok := row["updated_at"]; !ok {
				row["updated_at"] = now
			}
		}
		return tx.Table(table).Create(&rows).Error
	})
}
