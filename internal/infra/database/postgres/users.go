package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
)

func (r *PGRepo) SaveUser(ctx context.Context, u domain.User) (domain.User, error) {
	var q sq.Sqlizer
	if u.ID == 0 {
		q = r.qb().Insert(fmt.Sprintf("%s.users", r.schema)).
			Columns("username", "email", "password").
			Values(u.Username, u.Email, u.Password).
			Suffix("RETURNING id, username, email, password")
	} else {
		q = r.qb().Update(fmt.Sprintf("%s.users", r.schema)).
			Set("username", u.Username).
			Set("email", u.Email).
			Set("password", u.Password).
			Where(sq.Eq{"id": u.ID}).
			Suffix("RETURNING id, username, email, password")
	}

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SaveUser", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.User
	if err := row.Scan(&out.ID, &out.Username, &out.Email, &out.Password); err != nil {
		r.logger.Printf("SaveUser scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("SaveUser ok in %s id=%d username=%s", time.Since(start), out.ID, out.Username)
	return out, nil
}

func (r *PGRepo) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	q := r.qb().Select("id", "username", "email", "password").
		From(fmt.Sprintf("%s.users", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("UserByID: id=%d not found", id)
			return nil, nil
		}
		r.logger.Printf("UserByID scan error after %s: %v", time.Since(start), err)
		return nil, err
	}
	r.logger.Printf("UserByID ok in %s id=%d", time.Since(start), u.ID)
	return &u, nil
}

func (r *PGRepo) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := r.qb().Select("id", "username", "email", "password").
		From(fmt.Sprintf("%s.users", r.schema)).
		Where(sq.Eq{"username": username})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByUsername", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("UserByUsername: %q not found", username)
			return nil, nil
		}
		r.logger.Printf("UserByUsername scan error after %s: %v", time.Since(start), err)
		return nil, err
	}
	r.logger.Printf("UserByUsername ok in %s id=%d", time.Since(start), u.ID)
	return &u, nil
}

func (r *PGRepo) AllUsers(ctx context.Context) ([]domain.User, error) {
	q := r.qb().Select("id", "username", "email", "password").
		From(fmt.Sprintf("%s.users", r.schema)).
		OrderBy("id")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("AllUsers", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("AllUsers query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("AllUsers ok in %s count=%d", time.Since(start), len(users))
	return users, nil
}

func (r *PGRepo) UserExists(ctx context.Context, id domain.UserID) (bool, error) {
	q := r.qb().Select("1").
		From(fmt.Sprintf("%s.users", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserExists", sqlStr, args)

	var one int
	err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PGRepo) DeleteUser(ctx context.Context, id domain.UserID) error {
	q := r.qb().Delete(fmt.Sprintf("%s.users", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteUser", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteUser exec error after %s: %v", time.Since(start), err)
		return err
	}
	r.logger.Printf("DeleteUser ok in %s id=%d rows=%d", time.Since(start), id, tag.RowsAffected())
	return nil
}
