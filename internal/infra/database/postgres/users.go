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

const userCols = "uid, username, email, first_name, last_name, role, is_verified, password_hash, created_at, updated_at"

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Role, &u.IsVerified, &u.PassHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *PGRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	q := r.qb().Insert(r.table("users")).
		Columns("username", "email", "first_name", "last_name", "role", "password_hash").
		Values(u.Username, u.Email, u.FirstName, u.LastName, u.Role, u.PassHash).
		Suffix("RETURNING " + userCols)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateUser", sqlStr, args)

	start := time.Now()
	out, err := scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уникальный конфликт по email/username
			r.logger.Printf("CreateUser conflict after %s: %v", time.Since(start), err)
			return domain.User{}, domain.ErrConflict
		}
		r.logger.Printf("CreateUser scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("CreateUser ok in %s id=%s email=%s", time.Since(start), out.ID, out.Email)
	return out, nil
}

func (r *PGRepo) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	q := r.qb().Select(userCols).
		From(r.table("users")).
		Where(sq.Eq{"email": email})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByEmail", sqlStr, args)

	start := time.Now()
	u, err := scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		r.logger.Printf("UserByEmail scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("UserByEmail ok in %s id=%s", time.Since(start), u.ID)
	return u, nil
}

func (r *PGRepo) UserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	q := r.qb().Select(userCols).
		From(r.table("users")).
		Where(sq.Eq{"uid": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByID", sqlStr, args)

	start := time.Now()
	u, err := scanUser(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		r.logger.Printf("UserByID scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("UserByID ok in %s id=%s", time.Since(start), u.ID)
	return u, nil
}
