package postgres

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

const reviewCols = "uid, rating, review_text, user_uid, book_uid, created_at, updated_at"

func scanReview(row pgx.Row) (domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.Rating, &rv.ReviewText, &rv.UserID, &rv.BookID,
		&rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func (r *PGRepo) CreateReview(ctx context.Context, rv domain.Review) (domain.Review, error) {
	q := r.qb().Insert(r.table("reviews")).
		Columns("rating", "review_text", "user_uid", "book_uid").
		Values(rv.Rating, rv.ReviewText, rv.UserID, rv.BookID).
		Suffix("RETURNING " + reviewCols)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateReview", sqlStr, args)

	start := time.Now()
	out, err := scanReview(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// нарушение FK: книги или пользователя не существует
			return domain.Review{}, domain.ErrNotFound
		}
		r.logger.Printf("CreateReview scan error after %s: %v", time.Since(start), err)
		return domain.Review{}, err
	}
	r.logger.Printf("CreateReview ok in %s id=%s book=%s", time.Since(start), out.ID, out.BookID)
	return out, nil
}

func (r *PGRepo) ReviewByID(ctx context.Context, id domain.ReviewID) (domain.Review, error) {
	q := r.qb().Select(reviewCols).
		From(r.table("reviews")).
		Where(sq.Eq{"uid": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("ReviewByID", sqlStr, args)

	rv, err := scanReview(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Review{}, domain.ErrNotFound
		}
		r.logger.Printf("ReviewByID scan error: %v", err)
		return domain.Review{}, err
	}
	return rv, nil
}

func (r *PGRepo) ReviewsByBook(ctx context.Context, book domain.BookID) ([]domain.Review, error) {
	q := r.qb().Select(reviewCols).
		From(r.table("reviews")).
		Where(sq.Eq{"book_uid": book}).
		OrderBy("created_at DESC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("ReviewsByBook", sqlStr, args)

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("ReviewsByBook query error: %v", err)
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *PGRepo) DeleteReview(ctx context.Context, id domain.ReviewID) error {
	q := r.qb().Delete(r.table("reviews")).Where(sq.Eq{"uid": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteReview", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteReview exec error: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
