package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fabianengeln/paarspiel/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("should be able to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("should be able to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.ContentItem{}, &models.Answer{}); err != nil {
		t.Fatalf("should be able to migrate: %v", err)
	}
	return db
}

func writeContentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	tasks := "Aufgabe eins\n\nAufgabe zwei\n  \nAufgabe drei\n"
	if err := os.WriteFile(filepath.Join(dir, "mini_tasks.csv"), []byte(tasks), 0o644); err != nil {
		t.Fatalf("should be able to write mini tasks: %v", err)
	}
	compliments := "Kompliment eins\nKompliment zwei\n"
	if err := os.WriteFile(filepath.Join(dir, "compliments.csv"), []byte(compliments), 0o644); err != nil {
		t.Fatalf("should be able to write compliments: %v", err)
	}
	return dir
}

func TestSeedLoadsAllContentTypes(t *testing.T) {
	db := openTestDB(t)

	if err := Seed(db, writeContentDir(t)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	counts := map[string]int64{}
	for _, ct := range []string{models.ContentTypeQuestion, models.ContentTypeMiniTask, models.ContentTypeCompliment} {
		var n int64
		db.Model(&models.ContentItem{}).Where("type = ?", ct).Count(&n)
		counts[ct] = n
	}

	if counts[models.ContentTypeQuestion] != int64(len(baseQuestions)) {
		t.Fatalf("expected %d questions, got %d", len(baseQuestions), counts[models.ContentTypeQuestion])
	}
	if counts[models.ContentTypeMiniTask] != 3 {
		t.Fatalf("expected 3 mini tasks (blank lines skipped), got %d", counts[models.ContentTypeMiniTask])
	}
	if counts[models.ContentTypeCompliment] != 2 {
		t.Fatalf("expected 2 compliments, got %d", counts[models.ContentTypeCompliment])
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	dir := writeContentDir(t)

	if err := Seed(db, dir); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	// Answers from a previous run go away with the content they reference.
	var item models.ContentItem
	db.First(&item)
	db.Create(&models.Answer{ItemID: item.ID, Text: "old", AuthorName: "Alice"})

	if err := Seed(db, dir); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var items, answers int64
	db.Model(&models.ContentItem{}).Count(&items)
	db.Model(&models.Answer{}).Count(&answers)

	if items != int64(len(baseQuestions))+5 {
		t.Fatalf("reseeding duplicated content: %d items", items)
	}
	if answers != 0 {
		t.Fatalf("reseeding kept %d stale answers", answers)
	}
}

func TestSeedToleratesMissingFiles(t *testing.T) {
	db := openTestDB(t)

	if err := Seed(db, t.TempDir()); err != nil {
		t.Fatalf("seed with missing files failed: %v", err)
	}

	var n int64
	db.Model(&models.ContentItem{}).Where("type = ?", models.ContentTypeQuestion).Count(&n)
	if n != int64(len(baseQuestions)) {
		t.Fatalf("expected the built-in questions regardless, got %d", n)
	}
}
