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

func (r *PGRepo) SavePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	if p.User == nil {
		return domain.Post{}, fmt.Errorf("post without owner")
	}

	var q sq.Sqlizer
	if p.ID == 0 {
		q = r.qb().Insert(fmt.Sprintf("%s.posts", r.schema)).
			Columns("title", "text", "user_id").
			Values(p.Title, p.Text, p.User.ID).
			Suffix("RETURNING id, title, text")
	} else {
		q = r.qb().Update(fmt.Sprintf("%s.posts", r.schema)).
			Set("title", p.Title).
			Set("text", p.Text).
			Where(sq.Eq{"id": p.ID}).
			Suffix("RETURNING id, title, text")
	}

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SavePost", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	out := domain.Post{User: p.User}
	if err := row.Scan(&out.ID, &out.Title, &out.Text); err != nil {
		r.logger.Printf("SavePost scan error after %s: %v", time.Since(start), err)
		return domain.Post{}, err
	}
	r.logger.Printf("SavePost ok in %s id=%d user=%s", time.Since(start), out.ID, p.User.Username)
	return out, nil
}

func (r *PGRepo) PostByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	q := r.qb().Select("p.id", "p.title", "p.text",
		"u.id", "u.username", "u.email", "u.password").
		From(fmt.Sprintf("%s.posts p", r.schema)).
		Join(fmt.Sprintf("%s.users u ON u.id = p.user_id", r.schema)).
		Where(sq.Eq{"p.id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("PostByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var p domain.Post
	var u domain.User
	if err := row.Scan(&p.ID, &p.Title, &p.Text,
		&u.ID, &u.Username, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("PostByID: id=%d not found", id)
			return nil, nil
		}
		r.logger.Printf("PostByID scan error after %s: %v", time.Since(start), err)
		return nil, err
	}
	p.User = &u
	r.logger.Printf("PostByID ok in %s id=%d", time.Since(start), p.ID)
	return &p, nil
}

func (r *PGRepo) AllPosts(ctx context.Context) ([]domain.Post, error) {
	q := r.qb().Select("p.id", "p.title", "p.text",
		"u.id", "u.username", "u.email", "u.password").
		From(fmt.Sprintf("%s.posts p", r.schema)).
		Join(fmt.Sprintf("%s.users u ON u.id = p.user_id", r.schema)).
		OrderBy("p.id")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("AllPosts", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("AllPosts query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("AllPosts ok in %s count=%d", time.Since(start), len(posts))
	return posts, nil
}

func (r *PGRepo) PostsByUsername(ctx context.Context, username string) ([]domain.Post, error) {
	q := r.qb().Select("p.id", "p.title", "p.text",
		"u.id", "u.username", "u.email", "u.password").
		From(fmt.Sprintf("%s.posts p", r.schema)).
		Join(fmt.Sprintf("%s.users u ON u.id = p.user_id", r.schema)).
		Where(sq.Eq{"u.username": username}).
		OrderBy("p.id")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("PostsByUsername", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("PostsByUsername query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("PostsByUsername ok in %s user=%q count=%d", time.Since(start), username, len(posts))
	return posts, nil
}

func (r *PGRepo) PostExists(ctx context.Context, id domain.PostID) (bool, error) {
	q := r.qb().Select("1").
		From(fmt.Sprintf("%s.posts", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("PostExists", sqlStr, args)

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

func (r *PGRepo) DeletePost(ctx context.Context, id domain.PostID) error {
	q := r.qb().Delete(fmt.Sprintf("%s.posts", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeletePost", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeletePost exec error after %s: %v", time.Since(start), err)
		return err
	}
	r.logger.Printf("DeletePost ok in %s id=%d rows=%d", time.Since(start), id, tag.RowsAffected())
	return nil
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	posts := make([]domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		var u domain.User
		if err := rows.Scan(&p.ID, &p.Title, &p.Text,
			&u.ID, &u.Username, &u.Email, &u.Password); err != nil {
			return nil, err
		}
		p.User = &u
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
