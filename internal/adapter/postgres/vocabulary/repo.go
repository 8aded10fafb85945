// Package vocabulary implements the vocabulary catalog repository using
// PostgreSQL. Dynamic filters are built with squirrel; fixed-shape queries
// use raw SQL.
package vocabulary

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordcurve-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordcurve-backend/internal/domain"
)

const itemColumns = `id, word, pronunciation, translation, part_of_speech,
       example, example_translation, difficulty, category, tags, created_at, updated_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides vocabulary item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns a vocabulary item by primary key.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (domain.VocabularyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM vocabulary_items WHERE id = $1`, id)

	item, err := scanItemRow(row)
	if err != nil {
		return domain.VocabularyItem{}, postgres.MapError(err, "vocabulary item", id.String())
	}
	return item, nil
}

// GetByWord returns a vocabulary item by its unique word.
func (r *Repo) GetByWord(ctx context.Context, word string) (domain.VocabularyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM vocabulary_items WHERE word = $1`, word)

	item, err := scanItemRow(row)
	if err != nil {
		return domain.VocabularyItem{}, postgres.MapError(err, "vocabulary item", word)
	}
	return item, nil
}

// GetByIDs returns the vocabulary items whose IDs are in the given set.
// IDs with no matching item are silently absent from the result, so callers
// can detect dangling references by comparing lengths.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.VocabularyItem, error) {
	if len(ids) == 0 {
		return []domain.VocabularyItem{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+itemColumns+` FROM vocabulary_items WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary items by ids: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary items by ids: %w", err)
	}
	return items, nil
}

// Find returns catalog items matching the filter plus the total match count
// (ignoring limit/offset). Results are ordered newest first, matching the
// original import-facing listing.
func (r *Repo) Find(ctx context.Context, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterConditions(filter)

	countSQL, countArgs, err := psql.Select("count(*)").
		From("vocabulary_items").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vocabulary items: %w", err)
	}

	builder := psql.Select(itemColumns).
		From("vocabulary_items").
		Where(where).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	querySQL, queryArgs, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build find query: %w", err)
	}

	rows, err := q.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("find vocabulary items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("find vocabulary items: %w", err)
	}
	return items, total, nil
}

// filterConditions translates a domain filter into squirrel conditions.
func filterConditions(filter domain.VocabularyFilter) sq.And {
	cond := sq.And{}
	if filter.Category != nil {
		cond = append(cond, sq.Eq{"category": *filter.Category})
	}
	if filter.Difficulty != nil {
		cond = append(cond, sq.Eq{"difficulty": string(*filter.Difficulty)})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		cond = append(cond, sq.Or{
			sq.ILike{"word": pattern},
			sq.ILike{"translation": pattern},
		})
	}
	return cond
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new vocabulary item.
// A duplicate word results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item domain.VocabularyItem) (domain.VocabularyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Tags == nil {
		item.Tags = []string{}
	}

	_, err := q.Exec(ctx,
		`INSERT INTO vocabulary_items
		 (id, word, pronunciation, translation, part_of_speech, example,
		  example_translation, difficulty, category, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, item.Word, item.Pronunciation, item.Translation, item.PartOfSpeech,
		item.Example, item.ExampleTranslation, string(item.Difficulty), item.Category,
		item.Tags, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return domain.VocabularyItem{}, postgres.MapError(err, "vocabulary item", item.Word)
	}

	return item, nil
}

// Update applies the non-nil fields of upd to an item and bumps updated_at.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (domain.VocabularyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Update("vocabulary_items").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns)

	if upd.Word != nil {
		builder = builder.Set("word", *upd.Word)
	}
	if upd.Pronunciation != nil {
		builder = builder.Set("pronunciation", *upd.Pronunciation)
	}
	if upd.Translation != nil {
		builder = builder.Set("translation", *upd.Translation)
	}
	if upd.PartOfSpeech != nil {
		builder = builder.Set("part_of_speech", *upd.PartOfSpeech)
	}
	if upd.Example != nil {
		builder = builder.Set("example", *upd.Example)
	}
	if upd.ExampleTranslation != nil {
		builder = builder.Set("example_translation", *upd.ExampleTranslation)
	}
	if upd.Difficulty != nil {
		builder = builder.Set("difficulty", string(*upd.Difficulty))
	}
	if upd.Category != nil {
		builder = builder.Set("category", *upd.Category)
	}
	if upd.Tags != nil {
		builder = builder.Set("tags", upd.Tags)
	}

	updateSQL, args, err := builder.ToSql()
	if err != nil {
		return domain.VocabularyItem{}, fmt.Errorf("build update query: %w", err)
	}

	row := q.QueryRow(ctx, updateSQL, args...)
	item, err := scanItemRow(row)
	if err != nil {
		return domain.VocabularyItem{}, postgres.MapError(err, "vocabulary item", id.String())
	}
	return item, nil
}

// Delete removes a vocabulary item by ID.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM vocabulary_items WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "vocabulary item", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItems(rows pgx.Rows) ([]domain.VocabularyItem, error) {
	var items []domain.VocabularyItem
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []domain.VocabularyItem{}
	}
	return items, nil
}

func scanItemRow(row pgx.Row) (domain.VocabularyItem, error) {
	var (
		item       domain.VocabularyItem
		difficulty string
	)
	if err := row.Scan(&item.ID, &item.Word, &item.Pronunciation, &item.Translation,
		&item.PartOfSpeech, &item.Example, &item.ExampleTranslation, &difficulty,
		&item.Category, &item.Tags, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return domain.VocabularyItem{}, err
	}
	item.Difficulty = domain.Difficulty(difficulty)
	return item, nil
}
