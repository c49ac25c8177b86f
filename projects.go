package main

import (
	"context"
	"database/sql"
)

func getProjects(ctx context.Context, q querier) ([]Project, error) {
	query := "SELECT id, title, description, link, created FROM projects ORDER BY created DESC, id DESC"
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.Created)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func getProjectByID(ctx context.Context, q querier, id int) (*Project, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, title, description, link, created
		FROM projects
		WHERE id = ?`, id)

	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func createProject(ctx context.Context, q querier, title, description, link string) (int64, error) {
	result, err := q.ExecContext(ctx, `
		INSERT INTO projects (title, description, link)
		VALUES (?, ?, ?)`, title, description, link)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// updateProject overwrites all mutable fields of the row matching id.
// A missing id is a no-op.
func updateProject(ctx context.Context, q querier, id int, title, description, link string) error {
	_, err := q.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, link = ?
		WHERE id = ?`, title, description, link, id)
	return err
}

func deleteProject(ctx context.Context, q querier, id int) error {
	_, err := q.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	return err
}
