// Package word implements the word catalog repository using PostgreSQL.
// Fixed lookups use raw SQL; dynamic queries (word-set lookups, partial
// artifact updates) are built with squirrel.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguaweb/linguaweb-backend/internal/adapter/postgres"
	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// psql builds queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides word catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const wordColumns = `id, word, description, synonyms, antonyms, jeopardy, audio_key, time_created, time_updated`

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1`

const getByWordSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE word = $1`

const insertSQL = `
INSERT INTO words (word, description, synonyms, antonyms, jeopardy, audio_key)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + wordColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the word entry with the given surrogate id.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", fmt.Sprint(id))
	}

	return w, nil
}

// GetByWord returns the word entry with the given natural key.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, getByWordSQL, word))
	if err != nil {
		return nil, postgres.MapError(err, "word", word)
	}

	return w, nil
}

// ListIDs returns the ids of all stored words. Order is insertion order
// and must not be relied upon by callers.
func (r *Repo) ListIDs(ctx context.Context) ([]int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("id").From("words").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ids query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list word ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list word ids: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word ids: %w", err)
	}

	return ids, nil
}

// ListByWords returns the entries whose natural key is in the given set.
// Words without an entry are simply absent from the result.
func (r *Repo) ListByWords(ctx context.Context, words []string) ([]domain.Word, error) {
	if len(words) == 0 {
		return []domain.Word{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("id", "word", "description", "synonyms", "antonyms",
		"jeopardy", "audio_key", "time_created", "time_updated").
		From("words").
		Where(sq.Eq{"word": words}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by words query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	result := []domain.Word{}
	for rows.Next() {
		w, err := scanWordFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("list words: %w", err)
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word entry and returns the persisted row with its
// assigned id and timestamps. A duplicate word or audio key returns
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertSQL,
		w.Word,
		w.Description,
		domain.EncodeList(w.Synonyms),
		domain.EncodeList(w.Antonyms),
		w.Jeopardy,
		w.AudioKey,
	)

	created, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.Word)
	}

	return created, nil
}

// UpdateArtifacts fills the provided artifact fields on an existing row and
// returns the updated entry. Nil patch fields are left untouched;
// time_updated is always refreshed. Returns domain.ErrNotFound if the id
// is unknown.
func (r *Repo) UpdateArtifacts(ctx context.Context, id int64, patch domain.WordArtifacts) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("words").Set("time_updated", sq.Expr("now()"))
	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}
	if patch.Synonyms != nil {
		update = update.Set("synonyms", *domain.EncodeList(patch.Synonyms))
	}
	if patch.Antonyms != nil {
		update = update.Set("antonyms", *domain.EncodeList(patch.Antonyms))
	}
	if patch.Jeopardy != nil {
		update = update.Set("jeopardy", *patch.Jeopardy)
	}
	if patch.AudioKey != nil {
		update = update.Set("audio_key", *patch.AudioKey)
	}

	query, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + wordColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update artifacts query: %w", err)
	}

	updated, err := scanWord(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", fmt.Sprint(id))
	}

	return updated, nil
}

// DeleteAll removes every word entry. Administrative/test use only; the
// orchestrator never deletes rows.
func (r *Repo) DeleteAll(ctx context.Context) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("delete all words: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.Word, error) {
	var (
		w        domain.Word
		desc     pgtype.Text
		synonyms pgtype.Text
		antonyms pgtype.Text
		jeopardy pgtype.Text
		audioKey pgtype.Text
	)

	err := row.Scan(&w.ID, &w.Word, &desc, &synonyms, &antonyms, &jeopardy,
		&audioKey, &w.TimeCreated, &w.TimeUpdated)
	if err != nil {
		return nil, err
	}

	applyNullable(&w, desc, synonyms, antonyms, jeopardy, audioKey)

	return &w, nil
}

func scanWordFromRows(rows pgx.Rows) (*domain.Word, error) {
	var (
		w        domain.Word
		desc     pgtype.Text
		synonyms pgtype.Text
		antonyms pgtype.Text
		jeopardy pgtype.Text
		audioKey pgtype.Text
	)

	err := rows.Scan(&w.ID, &w.Word, &desc, &synonyms, &antonyms, &jeopardy,
		&audioKey, &w.TimeCreated, &w.TimeUpdated)
	if err != nil {
		return nil, err
	}

	applyNullable(&w, desc, synonyms, antonyms, jeopardy, audioKey)

	return &w, nil
}

func applyNullable(w *domain.Word, desc, synonyms, antonyms, jeopardy, audioKey pgtype.Text) {
	if desc.Valid {
		w.Description = &desc.String
	}
	if synonyms.Valid {
		w.Synonyms = domain.DecodeList(&synonyms.String)
	}
	if antonyms.Valid {
		w.Antonyms = domain.DecodeList(&antonyms.String)
	}
	if jeopardy.Valid {
		w.Jeopardy = &jeopardy.String
	}
	if audioKey.Valid {
		w.AudioKey = &audioKey.String
	}
}
