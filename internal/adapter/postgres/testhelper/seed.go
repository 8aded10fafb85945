package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedVocabularyItem creates a vocabulary item in the given category with a
// unique word. Returns the filled domain.VocabularyItem.
func SeedVocabularyItem(t *testing.T, pool *pgxpool.Pool, category string) domain.VocabularyItem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.VocabularyItem{
		ID:                 uuid.New(),
		Word:               "word-" + suffix,
		Pronunciation:      "/wɜːd-" + suffix + "/",
		Translation:        "translation-" + suffix,
		PartOfSpeech:       "noun",
		Example:            "Example sentence with word-" + suffix + ".",
		ExampleTranslation: "Example translation " + suffix + ".",
		Difficulty:         domain.DifficultyBeginner,
		Category:           category,
		Tags:               []string{"seed", suffix},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vocabulary_items
		 (id, word, pronunciation, translation, part_of_speech, example,
		  example_translation, difficulty, category, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, item.Word, item.Pronunciation, item.Translation, item.PartOfSpeech,
		item.Example, item.ExampleTranslation, string(item.Difficulty), item.Category,
		item.Tags, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabularyItem insert: %v", err)
	}

	return item
}

// SeedProgressRecord creates a progress record for the given user and
// vocabulary item. The caller adjusts status, counters, and timestamps on the
// struct before passing it in; zero-value fields get sensible defaults.
func SeedProgressRecord(t *testing.T, pool *pgxpool.Pool, rec domain.ProgressRecord) domain.ProgressRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Status == "" {
		rec.Status = domain.LearningStatusNew
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO progress_records
		 (id, user_id, vocabulary_id, status, first_learned_at, last_reviewed_at,
		  next_review_date, review_count, correct_count, incorrect_count,
		  created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		rec.ID, rec.UserID, rec.VocabularyID, string(rec.Status), rec.FirstLearnedAt,
		rec.LastReviewedAt, rec.NextReviewDate, rec.ReviewCount, rec.CorrectCount,
		rec.IncorrectCount, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgressRecord insert: %v", err)
	}

	return rec
}
