package repository

import (
	"github.com/florv/home-helper/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSearchHistoryRepository is a GORM implementation of SearchHistoryRepository
type GormSearchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository creates a new SearchHistoryRepository
func NewSearchHistoryRepository(db *gorm.DB) SearchHistoryRepository {
	return &GormSearchHistoryRepository{db: db}
}

// Record upserts the history row for (author, type, value). The unique index
// on those columns turns a concurrent duplicate insert into the increment
// branch instead of a second row.
func (r *GormSearchHistoryRepository) Record(authorID uint64, searchType models.SearchType, value string) error {
	entry := models.SearchHistory{
		AuthorID:      authorID,
		SearchType:    searchType,
		SearchValue:   value,
		TimesSearched: 1,
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "author_id"},
				{Name: "search_type"},
				{Name: "search_value"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"times_searched": gorm.Expr("times_searched + 1"),
			}),
		}).
		Create(&entry).Error
}

// ListByAuthor returns the author's history ordered by times searched
func (r *GormSearchHistoryRepository) ListByAuthor(authorID uint64) ([]models.SearchHistory, error) {
	var entries []models.SearchHistory
	if err := r.db.
		Where("author_id = ?", authorID).
		Order("times_searched ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
