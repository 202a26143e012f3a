package postgres

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

const bookCols = "uid, title, author, publisher, published_date, page_count, language, user_uid, created_at, updated_at"

func scanBook(row pgx.Row) (domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.PublishedDate,
		&b.PageCount, &b.Language, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *PGRepo) CreateBook(ctx context.Context, b domain.Book) (domain.Book, error) {
	q := r.qb().Insert(r.table("books")).
		Columns("title", "author", "publisher", "published_date", "page_count", "language", "user_uid").
		Values(b.Title, b.Author, b.Publisher, b.PublishedDate, b.PageCount, b.Language, b.OwnerID).
		Suffix("RETURNING " + bookCols)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateBook", sqlStr, args)

	start := time.Now()
	out, err := scanBook(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateBook scan error after %s: %v", time.Since(start), err)
		return domain.Book{}, err
	}
	r.logger.Printf("CreateBook ok in %s id=%s title=%q", time.Since(start), out.ID, out.Title)
	return out, nil
}

func (r *PGRepo) BookByID(ctx context.Context, id domain.BookID) (domain.Book, error) {
	q := r.qb().Select(bookCols).
		From(r.table("books")).
		Where(sq.Eq{"uid": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("BookByID", sqlStr, args)

	b, err := scanBook(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Book{}, domain.ErrNotFound
		}
		r.logger.Printf("BookByID scan error: %v", err)
		return domain.Book{}, err
	}
	return b, nil
}

func (r *PGRepo) BooksList(ctx context.Context, limit int) ([]domain.Book, error) {
	q := r.qb().Select(bookCols).
		From(r.table("books")).
		OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	sqlStr, args, _ := q.ToSql()
	r.logSQL("BooksList", sqlStr, args)

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("BooksList query error: %v", err)
		return nil, err
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *PGRepo) BooksByOwner(ctx context.Context, owner domain.UserID) ([]domain.Book, error) {
	q := r.qb().Select(bookCols).
		From(r.table("books")).
		Where(sq.Eq{"user_uid": owner}).
		OrderBy("created_at DESC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("BooksByOwner", sqlStr, args)

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("BooksByOwner query error: %v", err)
		return nil, err
	}
	defer rows.Close()

	return collectBooks(rows)
}

func collectBooks(rows pgx.Rows) ([]domain.Book, error) {
	books := []domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PGRepo) UpdateBook(ctx context.Context, id domain.BookID, p domain.BookPatch, now time.Time) (domain.Book, error) {
	q := r.qb().Update(r.table("books")).
		Set("updated_at", now).
		Where(sq.Eq{"uid": id}).
		Suffix("RETURNING " + bookCols)

	if p.Title != nil {
		q = q.Set("title", *p.Title)
	}
	if p.Author != nil {
		q = q.Set("author", *p.Author)
	}
	if p.Publisher != nil {
		q = q.Set("publisher", *p.Publisher)
	}
	if p.PageCount != nil {
		q = q.Set("page_count", *p.PageCount)
	}
	if p.Language != nil {
		q = q.Set("language", *p.Language)
	}

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdateBook", sqlStr, args)

	b, err := scanBook(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Book{}, domain.ErrNotFound
		}
		r.logger.Printf("UpdateBook scan error: %v", err)
		return domain.Book{}, err
	}
	return b, nil
}

func (r *PGRepo) DeleteBook(ctx context.Context, id domain.BookID) error {
	q := r.qb().Delete(r.table("books")).Where(sq.Eq{"uid": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteBook", sqlStr, args)

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteBook exec error: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
