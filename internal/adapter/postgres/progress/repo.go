// Package progress implements the per-learner progress record repository
// using PostgreSQL.
package progress

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

const recordColumns = `id, user_id, vocabulary_id, status, first_learned_at,
       last_reviewed_at, next_review_date, review_count, correct_count,
       incorrect_count, created_at, updated_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides progress record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the progress record for a (user, vocabulary item) pair.
func (r *Repo) Get(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM progress_records
		 WHERE user_id = $1 AND vocabulary_id = $2`, userID, vocabularyID)

	rec, err := scanRecordRow(row)
	if err != nil {
		return domain.ProgressRecord{}, postgres.MapError(err, "progress record", recordKey(userID, vocabularyID))
	}
	return rec, nil
}

// GetForUpdate is like Get but takes a row lock for the duration of the
// surrounding transaction. Outside a transaction the lock is released
// immediately, so it must only be called via TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, userID string, vocabularyID uuid.UUID) (domain.ProgressRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM progress_records
		 WHERE user_id = $1 AND vocabulary_id = $2
		 FOR UPDATE`, userID, vocabularyID)

	rec, err := scanRecordRow(row)
	if err != nil {
		return domain.ProgressRecord{}, postgres.MapError(err, "progress record", recordKey(userID, vocabularyID))
	}
	return rec, nil
}

// Upsert inserts the record or, if a record for the same (user, vocabulary
// item) pair already exists, overwrites its mutable fields.
func (r *Repo) Upsert(ctx context.Context, rec domain.ProgressRecord) (domain.ProgressRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	row := q.QueryRow(ctx,
		`INSERT INTO progress_records
		 (id, user_id, vocabulary_id, status, first_learned_at, last_reviewed_at,
		  next_review_date, review_count, correct_count, incorrect_count,
		  created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (user_id, vocabulary_id) DO UPDATE SET
		   status           = EXCLUDED.status,
		   first_learned_at = EXCLUDED.first_learned_at,
		   last_reviewed_at = EXCLUDED.last_reviewed_at,
		   next_review_date = EXCLUDED.next_review_date,
		   review_count     = EXCLUDED.review_count,
		   correct_count    = EXCLUDED.correct_count,
		   incorrect_count  = EXCLUDED.incorrect_count,
		   updated_at       = EXCLUDED.updated_at
		 RETURNING `+recordColumns,
		rec.ID, rec.UserID, rec.VocabularyID, string(rec.Status), rec.FirstLearnedAt,
		rec.LastReviewedAt, rec.NextReviewDate, rec.ReviewCount, rec.CorrectCount,
		rec.IncorrectCount, rec.CreatedAt, rec.UpdatedAt,
	)

	saved, err := scanRecordRow(row)
	if err != nil {
		return domain.ProgressRecord{}, postgres.MapError(err, "progress record", recordKey(rec.UserID, rec.VocabularyID))
	}
	return saved, nil
}

// QueryByUser returns the user's progress records matching the filter.
// An empty filter returns all of the user's records.
func (r *Repo) QueryByUser(ctx context.Context, userID string, filter domain.ProgressFilter) ([]domain.ProgressRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cond := sq.And{sq.Eq{"user_id": userID}}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		cond = append(cond, sq.Eq{"status": statuses})
	}
	if filter.LastReviewedFrom != nil {
		cond = append(cond, sq.GtOrEq{"last_reviewed_at": *filter.LastReviewedFrom})
	}
	if filter.LastReviewedUntil != nil {
		cond = append(cond, sq.Lt{"last_reviewed_at": *filter.LastReviewedUntil})
	}
	if filter.NextReviewBefore != nil {
		cond = append(cond, sq.LtOrEq{"next_review_date": *filter.NextReviewBefore})
	}

	querySQL, args, err := psql.Select(recordColumns).
		From("progress_records").
		Where(cond).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress query: %w", err)
	}

	rows, err := q.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("query progress records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("query progress records: %w", err)
	}
	return records, nil
}

// CountByStatus returns per-status record counts for the user in one pass.
func (r *Repo) CountByStatus(ctx context.Context, userID string) (domain.StatusCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT status, count(*) FROM progress_records
		 WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count progress by status: %w", err)
	}
	defer rows.Close()

	var counts domain.StatusCounts
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return domain.StatusCounts{}, fmt.Errorf("count progress by status: %w", err)
		}
		switch domain.LearningStatus(status) {
		case domain.LearningStatusNew:
			counts.New = n
		case domain.LearningStatusLearning:
			counts.Learning = n
		case domain.LearningStatusReviewing:
			counts.Reviewing = n
		case domain.LearningStatusMastered:
			counts.Mastered = n
		case domain.LearningStatusForgotten:
			counts.Forgotten = n
		}
		counts.Total += n
	}
	if err := rows.Err(); err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count progress by status: %w", err)
	}
	return counts, nil
}

// CountLearnedSince returns how many of the user's items were first learned
// at or after the given instant. Used for "learned today" stats with a
// local-midnight cutoff.
func (r *Repo) CountLearnedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM progress_records
		 WHERE user_id = $1 AND first_learned_at >= $2`, userID, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count learned since: %w", err)
	}
	return n, nil
}

// DeleteByVocabulary removes all progress records referencing a vocabulary
// item, across all users. Called when a catalog item is deleted.
func (r *Repo) DeleteByVocabulary(ctx context.Context, vocabularyID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM progress_records WHERE vocabulary_id = $1`, vocabularyID)
	if err != nil {
		return 0, fmt.Errorf("delete progress by vocabulary: %w", err)
	}
	return tag.RowsAffected(), nil
}

func recordKey(userID string, vocabularyID uuid.UUID) string {
	return userID + "/" + vocabularyID.String()
}

func scanRecords(rows pgx.Rows) ([]domain.ProgressRecord, error) {
	var records []domain.ProgressRecord
	for rows.Next() {
		rec, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if records == nil {
		records = []domain.ProgressRecord{}
	}
	return records, nil
}

func scanRecordRow(row pgx.Row) (domain.ProgressRecord, error) {
	var (
		rec    domain.ProgressRecord
		status string
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.VocabularyID, &status,
		&rec.FirstLearnedAt, &rec.LastReviewedAt, &rec.NextReviewDate,
		&rec.ReviewCount, &rec.CorrectCount, &rec.IncorrectCount,
		&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.ProgressRecord{}, err
	}
	rec.Status = domain.LearningStatus(status)
	return rec, nil
}
