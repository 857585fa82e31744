package services

import (
	"errors"
	"sync"
	"time"

	"github.com/fabianengeln/paarspiel/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMissingData  = errors.New("missing data")
	ErrNoTurn       = errors.New("no active turn")
	ErrItemNotFound = errors.New("content item not found")
)

// GameService records answers and advances the turn. The answer ledger is
// append-only; rows are never updated or deleted while a game runs.
type GameService struct {
	db *gorm.DB

	mu   sync.Mutex
	last time.Time
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

// SubmitAnswer appends the current player's answer and hands the turn to the
// other player. The turn only flips once the answer row is committed, so the
// two never diverge.
func (s *GameService) SubmitAnswer(game *models.GameSession, itemID uint, text string) (*models.Answer, error) {
	if game == nil {
		return nil, ErrNoTurn
	}
	if itemID == 0 || text == "" {
		return nil, ErrMissingData
	}

	var item models.ContentItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	answer := models.Answer{
		ItemID:     item.ID,
		Text:       text,
		AuthorName: game.CurrentTurn,
		Timestamp:  s.nextTimestamp(),
	}
	if err := s.db.Create(&answer).Error; err != nil {
		return nil, err
	}

	game.SwitchTurn()
	return &answer, nil
}

// nextTimestamp hands out strictly increasing creation times even when the
// wall clock has not advanced between two submissions.
func (s *GameService) nextTimestamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if !now.After(s.last) {
		now = s.last.Add(time.Microsecond)
	}
	s.last = now
	return now
}

type AnswerEntry struct {
	Answer models.Answer      `json:"answer"`
	Item   models.ContentItem `json:"item"`
}

// Summary returns every recorded answer joined to its content item, newest
// first.
func (s *GameService) Summary() ([]AnswerEntry, error) {
	var answers []models.Answer
	if err := s.db.Order("timestamp DESC").Find(&answers).Error; err != nil {
		return nil, err
	}

	entries := make([]AnswerEntry, 0, len(answers))
	for _, a := range answers {
		var item models.ContentItem
		if err := s.db.First(&item, a.ItemID).Error; err != nil {
			return nil, err
		}
		entries = append(entries, AnswerEntry{Answer: a, Item: item})
	}
	return entries, nil
}
