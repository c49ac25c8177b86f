package main

import (
	"net/http"
	"strconv"
)

func (p *Portfolio) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	conn, err := p.db.Conn(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	projects, err := getProjects(r.Context(), conn)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	posts, err := getBlogPosts(r.Context(), conn)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	p.render(w, "index.html", map[string]any{
		"Title":           "Home",
		"Projects":        projects,
		"BlogPosts":       posts,
		"IsAuthenticated": isAuthenticated(r),
	})
}

func (p *Portfolio) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	conn, err := p.db.Conn(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	project, err := getProjectByID(r.Context(), conn, id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if project == nil {
		http.NotFound(w, r)
		return
	}

	p.render(w, "project.html", map[string]any{
		"Title":           project.Title,
		"Project":         project,
		"IsAuthenticated": isAuthenticated(r),
	})
}

func (p *Portfolio) BlogDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	conn, err := p.db.Conn(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	post, err := getBlogPostByID(r.Context(), conn, id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	p.render(w, "blog.html", map[string]any{
		"Title":           post.Title,
		"Post":            post,
		"IsAuthenticated": isAuthenticated(r),
	})
}
