package database

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/fabianengeln/paarspiel/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	categoryMiniTask   = "💝 Mini-Aufgabe"
	categoryCompliment = "✨ Kompliment"
)

// Seed wipes and reloads the content tables: the built-in question list plus
// mini-tasks and compliments from line-delimited files under contentDir.
// Answers go first, they reference the items.
func Seed(db *gorm.DB, contentDir string) error {
	tasks, err := readLines(filepath.Join(contentDir, "mini_tasks.csv"))
	if err != nil {
		return err
	}
	compliments, err := readLines(filepath.Join(contentDir, "compliments.csv"))
	if err != nil {
		return err
	}

	items := make([]models.ContentItem, 0, len(baseQuestions)+len(tasks)+len(compliments))
	items = append(items, baseQuestions...)
	for _, text := range tasks {
		items = append(items, models.ContentItem{Text: text, Category: categoryMiniTask, Type: models.ContentTypeMiniTask})
	}
	for _, text := range compliments {
		items = append(items, models.ContentItem{Text: text, Category: categoryCompliment, Type: models.ContentTypeCompliment})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id > 0").Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id > 0").Delete(&models.ContentItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.CreateInBatches(items, 100).Error
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("questions", len(baseQuestions)).
		Int("mini_tasks", len(tasks)).
		Int("compliments", len(compliments)).
		Msg("content seeded")
	return nil
}

// readLines reads one item of text per line, skipping blank lines. A missing
// file is treated as an empty list.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("content file not found, skipping")
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
