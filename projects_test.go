package main

import (
	"context"
	"database/sql"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err = initSchema(db); err != nil {
		t.Fatalf("initializing test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetProjects(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := createProject(ctx, db, "Test Project", "Description of test project", "https://example.com")
	if err != nil {
		t.Fatalf("createProject() error: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero project id")
	}

	projects, err := getProjects(ctx, db)
	if err != nil {
		t.Fatalf("getProjects() error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}

	p := projects[0]
	if p.ID != int(id) {
		t.Errorf("expected id %d, got %d", id, p.ID)
	}
	if p.Title != "Test Project" {
		t.Errorf("expected title 'Test Project', got %q", p.Title)
	}
	if p.Description != "Description of test project" {
		t.Errorf("expected description 'Description of test project', got %q", p.Description)
	}
	if p.Link != "https://example.com" {
		t.Errorf("expected link 'https://example.com', got %q", p.Link)
	}
}

func TestCreateProject_UniqueIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, err := createProject(ctx, db, "First", "First description", "")
	if err != nil {
		t.Fatalf("createProject() error: %v", err)
	}
	second, err := createProject(ctx, db, "Second", "Second description", "")
	if err != nil {
		t.Fatalf("createProject() error: %v", err)
	}

	if first == second {
		t.Errorf("expected unique ids, got %d twice", first)
	}
}

func TestGetProjects_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createProject(ctx, db, "Older", "Description", "")
	createProject(ctx, db, "Newer", "Description", "")

	projects, err := getProjects(ctx, db)
	if err != nil {
		t.Fatalf("getProjects() error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}

	if projects[0].Title != "Newer" {
		t.Errorf("expected newest project first, got %q", projects[0].Title)
	}
	if projects[1].Title != "Older" {
		t.Errorf("expected oldest project last, got %q", projects[1].Title)
	}
}

func TestGetProjectByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	project, err := getProjectByID(context.Background(), db, 42)
	if err != nil {
		t.Fatalf("getProjectByID() error: %v", err)
	}
	if project != nil {
		t.Error("expected nil project for nonexistent id")
	}
}

func TestUpdateProject(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, _ := createProject(ctx, db, "Original", "Original description", "")

	err := updateProject(ctx, db, int(id), "Updated", "Updated description", "https://example.com")
	if err != nil {
		t.Fatalf("updateProject() error: %v", err)
	}

	project, _ := getProjectByID(ctx, db, int(id))
	if project == nil {
		t.Fatal("expected project, got nil")
	}
	if project.Title != "Updated" {
		t.Errorf("expected title 'Updated', got %q", project.Title)
	}
	if project.Description != "Updated description" {
		t.Errorf("expected updated description, got %q", project.Description)
	}
	if project.Link != "https://example.com" {
		t.Errorf("expected updated link, got %q", project.Link)
	}
}

func TestUpdateProject_NonexistentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createProject(ctx, db, "Only", "Description", "")

	if err := updateProject(ctx, db, 42, "Ghost", "Ghost description", ""); err != nil {
		t.Fatalf("updateProject() error: %v", err)
	}

	projects, _ := getProjects(ctx, db)
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].Title != "Only" {
		t.Errorf("expected existing project untouched, got %q", projects[0].Title)
	}
}

func TestDeleteProject(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, _ := createProject(ctx, db, "To Delete", "Description", "")

	if err := deleteProject(ctx, db, int(id)); err != nil {
		t.Fatalf("deleteProject() error: %v", err)
	}

	project, _ := getProjectByID(ctx, db, int(id))
	if project != nil {
		t.Error("expected project to be deleted")
	}
}

func TestDeleteProject_NonexistentIsNoOp(t *testing.T) {
	db := newTestDB(t)

	if err := deleteProject(context.Background(), db, 42); err != nil {
		t.Errorf("deleteProject() error for nonexistent id: %v", err)
	}
}
