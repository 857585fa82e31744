package services

import (
	"errors"
	"sync"

	"github.com/fabianengeln/paarspiel/internal/models"

	"gorm.io/gorm"
)

// ErrNoContent is returned when no item matches the requested type and
// category, even after an exhaustion reset and the category fallback.
var ErrNoContent = errors.New("no content available")

const (
	// PolicyRecycle tracks a per-item used flag: no item repeats until every
	// item of its type has been shown once since the last reset.
	PolicyRecycle = "recycle"
	// PolicyStateless picks uniformly at random on every call and never
	// touches the used flag.
	PolicyStateless = "stateless"
)

// ContentService selects random prompts from the shared content pool. The
// used flags are process-wide state: concurrent games draw from the same
// exhaustion pool.
type ContentService struct {
	db     *gorm.DB
	policy string

	// mu serializes the read-then-mark sequence on the used flag.
	mu sync.Mutex
}

func NewContentService(db *gorm.DB, policy string) *ContentService {
	if policy != PolicyStateless {
		policy = PolicyRecycle
	}
	return &ContentService{db: db, policy: policy}
}

func (s *ContentService) Policy() string {
	return s.policy
}

// Select draws one random item of the given type and category. Type may be
// "any" and category may be "all" to disable the respective filter.
func (s *ContentService) Select(contentType, category string) (*models.ContentItem, error) {
	if s.policy == PolicyStateless {
		return s.selectStateless(contentType, category)
	}
	return s.selectRecycle(contentType, category)
}

func (s *ContentService) selectStateless(contentType, category string) (*models.ContentItem, error) {
	var item models.ContentItem
	err := scopeItems(s.db, contentType, category).Order("RANDOM()").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoContent
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ContentService) selectRecycle(contentType, category string) (*models.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item models.ContentItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := scopeItems(tx, contentType, category).
			Where("used = ?", false).
			Order("RANDOM()").First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Exhausted: recycle the whole type, not just the category.
			if err := resetUsed(tx, contentType); err != nil {
				return err
			}
			err = scopeItems(tx, contentType, category).
				Where("used = ?", false).
				Order("RANDOM()").First(&item).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Last resort for a category that never has fresh items.
			err = scopeItems(tx, contentType, category).Order("RANDOM()").First(&item).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.ContentItem{}).
			Where("id = ?", item.ID).
			Update("used", true).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoContent
	}
	if err != nil {
		return nil, err
	}
	item.Used = true
	return &item, nil
}

// ListCategories returns the distinct category labels present among items of
// the given type.
func (s *ContentService) ListCategories(contentType string) ([]string, error) {
	tx := s.db.Model(&models.ContentItem{}).Distinct("category")
	if contentType != "" && contentType != models.ContentTypeAny {
		tx = tx.Where("type = ?", contentType)
	}

	var categories []string
	if err := tx.Order("category ASC").Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ResetAll clears the used flag for every item of the given type. Items are
// never removed or reordered.
func (s *ContentService) ResetAll(contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resetUsed(s.db, contentType)
}

func scopeItems(db *gorm.DB, contentType, category string) *gorm.DB {
	tx := db.Model(&models.ContentItem{})
	if contentType != "" && contentType != models.ContentTypeAny {
		tx = tx.Where("type = ?", contentType)
	}
	if category != "" && category != models.CategoryAll {
		tx = tx.Where("category = ?", category)
	}
	return tx
}

func resetUsed(db *gorm.DB, contentType string) error {
	tx := db.Model(&models.ContentItem{}).Where("used = ?", true)
	if contentType != "" && contentType != models.ContentTypeAny {
		tx = tx.Where("type = ?", contentType)
	}
	return tx.Update("used", false).Error
}
