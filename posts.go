package main

import (
	"context"
	"database/sql"
)

func getBlogPosts(ctx context.Context, q querier) ([]BlogPost, error) {
	query := "SELECT id, title, content, created FROM blog_posts ORDER BY created DESC, id DESC"
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		var post BlogPost
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Created)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func getBlogPostByID(ctx context.Context, q querier, id int) (*BlogPost, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, title, content, created
		FROM blog_posts
		WHERE id = ?`, id)

	var post BlogPost
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func createBlogPost(ctx context.Context, q querier, title, content string) (int64, error) {
	result, err := q.ExecContext(ctx, `
		INSERT INTO blog_posts (title, content)
		VALUES (?, ?)`, title, content)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// updateBlogPost overwrites title and content of the row matching id.
// A missing id is a no-op.
func updateBlogPost(ctx context.Context, q querier, id int, title, content string) error {
	_, err := q.ExecContext(ctx, `
		UPDATE blog_posts
		SET title = ?, content = ?
		WHERE id = ?`, title, content, id)
	return err
}

func deleteBlogPost(ctx context.Context, q querier, id int) error {
	_, err := q.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	return err
}
