package vocabulary_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*vocabulary.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return vocabulary.New(pool), pool
}

func assertIsDomainError(t *testing.T, err, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %v, got nil", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected error %v, got %v", want, err)
	}
}

// ---------------------------------------------------------------------------
// Create + Get
// ---------------------------------------------------------------------------

func TestRepo_Create_AndGet(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	created, err := repo.Create(ctx, domain.VocabularyItem{
		Word:        "create-" + suffix,
		Translation: "перевод-" + suffix,
		Difficulty:  domain.DifficultyIntermediate,
		Category:    "cat-" + suffix,
		Tags:        []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Fatal("Create: expected non-nil ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Create: expected timestamps to be set")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.Word != created.Word {
		t.Errorf("Word mismatch: got %q, want %q", got.Word, created.Word)
	}
	if got.Difficulty != domain.DifficultyIntermediate {
		t.Errorf("Difficulty mismatch: got %s, want %s", got.Difficulty, domain.DifficultyIntermediate)
	}
	if len(got.Tags) != 2 {
		t.Errorf("Tags mismatch: got %v, want [a b]", got.Tags)
	}
}

func TestRepo_Create_DuplicateWord(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	item := testhelper.SeedVocabularyItem(t, pool, "dup-cat")

	_, err := repo.Create(ctx, domain.VocabularyItem{
		Word:        item.Word,
		Translation: "other",
		Difficulty:  domain.DifficultyBeginner,
		Category:    "dup-cat",
	})
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Get_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.Get(context.Background(), uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// GetByWord
// ---------------------------------------------------------------------------

func TestRepo_GetByWord(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	item := testhelper.SeedVocabularyItem(t, pool, "byword-cat")

	got, err := repo.GetByWord(ctx, item.Word)
	if err != nil {
		t.Fatalf("GetByWord: unexpected error: %v", err)
	}
	if got.ID != item.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, item.ID)
	}

	_, err = repo.GetByWord(ctx, "no-such-word-"+uuid.New().String()[:8])
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// GetByIDs
// ---------------------------------------------------------------------------

func TestRepo_GetByIDs_SkipsMissing(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testhelper.SeedVocabularyItem(t, pool, "byids-cat")
	b := testhelper.SeedVocabularyItem(t, pool, "byids-cat")

	got, err := repo.GetByIDs(ctx, []uuid.UUID{a.ID, uuid.New(), b.ID})
	if err != nil {
		t.Fatalf("GetByIDs: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
}

func TestRepo_GetByIDs_Empty(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	got, err := repo.GetByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetByIDs: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

// ---------------------------------------------------------------------------
// Find
// ---------------------------------------------------------------------------

func TestRepo_Find_ByCategory(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	category := "find-cat-" + uuid.New().String()[:8]
	for range 3 {
		testhelper.SeedVocabularyItem(t, pool, category)
	}
	testhelper.SeedVocabularyItem(t, pool, "other-cat")

	items, total, err := repo.Find(ctx, domain.VocabularyFilter{Category: &category})
	if err != nil {
		t.Fatalf("Find: unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("total mismatch: got %d, want 3", total)
	}
	if len(items) != 3 {
		t.Errorf("items mismatch: got %d, want 3", len(items))
	}
	for _, it := range items {
		if it.Category != category {
			t.Errorf("unexpected category %q in results", it.Category)
		}
	}
}

func TestRepo_Find_LimitOffset(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	category := "page-cat-" + uuid.New().String()[:8]
	for range 5 {
		testhelper.SeedVocabularyItem(t, pool, category)
	}

	items, total, err := repo.Find(ctx, domain.VocabularyFilter{
		Category: &category,
		Limit:    2,
		Offset:   2,
	})
	if err != nil {
		t.Fatalf("Find: unexpected error: %v", err)
	}
	if total != 5 {
		t.Errorf("total mismatch: got %d, want 5", total)
	}
	if len(items) != 2 {
		t.Errorf("items mismatch: got %d, want 2", len(items))
	}
}

func TestRepo_Find_Search(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	category := "search-cat-" + uuid.New().String()[:8]
	item := testhelper.SeedVocabularyItem(t, pool, category)

	// Substring of the unique word, uppercased to exercise ILIKE.
	search := strings.ToUpper(item.Word[len("word-"):])

	items, total, err := repo.Find(ctx, domain.VocabularyFilter{
		Category: &category,
		Search:   &search,
	})
	if err != nil {
		t.Fatalf("Find: unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected exactly 1 match, got total=%d len=%d", total, len(items))
	}
	if items[0].ID != item.ID {
		t.Errorf("ID mismatch: got %s, want %s", items[0].ID, item.ID)
	}
}

func TestRepo_Find_NoMatches(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	category := "empty-cat-" + uuid.New().String()[:8]
	items, total, err := repo.Find(context.Background(), domain.VocabularyFilter{Category: &category})
	if err != nil {
		t.Fatalf("Find: unexpected error: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected no matches, got total=%d len=%d", total, len(items))
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestRepo_Update_PartialFields(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	item := testhelper.SeedVocabularyItem(t, pool, "update-cat")

	newTranslation := "updated-translation"
	newDifficulty := domain.DifficultyAdvanced

	updated, err := repo.Update(ctx, item.ID, domain.VocabularyUpdate{
		Translation: &newTranslation,
		Difficulty:  &newDifficulty,
	})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if updated.Translation != newTranslation {
		t.Errorf("Translation mismatch: got %q, want %q", updated.Translation, newTranslation)
	}
	if updated.Difficulty != newDifficulty {
		t.Errorf("Difficulty mismatch: got %s, want %s", updated.Difficulty, newDifficulty)
	}
	// Untouched fields keep their values.
	if updated.Word != item.Word {
		t.Errorf("Word changed unexpectedly: got %q, want %q", updated.Word, item.Word)
	}
	if !updated.UpdatedAt.After(item.UpdatedAt) {
		t.Errorf("UpdatedAt not bumped: got %v, seeded %v", updated.UpdatedAt, item.UpdatedAt)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	translation := "x"
	_, err := repo.Update(context.Background(), uuid.New(), domain.VocabularyUpdate{Translation: &translation})
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	item := testhelper.SeedVocabularyItem(t, pool, "delete-cat")

	if err := repo.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	_, err := repo.Get(ctx, item.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, item.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}
