package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

func (p *Portfolio) Dashboard(w http.ResponseWriter, r *http.Request) {
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

	p.render(w, "dashboard.html", map[string]any{
		"Title":           "Admin Dashboard",
		"Projects":        projects,
		"BlogPosts":       posts,
		"IsAuthenticated": true,
		"CSRFToken":       ensureCSRFToken(w, r),
	})
}

func (p *Portfolio) ProjectNew(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		p.render(w, "project_form.html", map[string]any{
			"Title":           "New Project",
			"IsAuthenticated": true,
			"CSRFToken":       ensureCSRFToken(w, r),
		})
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		title := strings.TrimSpace(r.FormValue("title"))
		description := strings.TrimSpace(r.FormValue("description"))
		link := strings.TrimSpace(r.FormValue("link"))

		if title == "" || description == "" {
			w.WriteHeader(http.StatusBadRequest)
			p.render(w, "project_form.html", map[string]any{
				"Title":           "New Project",
				"Error":           "Title and description are required.",
				"IsAuthenticated": true,
				"CSRFToken":       ensureCSRFToken(w, r),
			})
			return
		}

		conn, err := p.db.Conn(r.Context())
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		defer conn.Close()

		if _, err := createProject(r.Context(), conn, title, description, link); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

func (p *Portfolio) ProjectEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodGet {
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
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}

		p.render(w, "project_form.html", map[string]any{
			"Title":           fmt.Sprintf("Editing %q", project.Title),
			"Project":         project,
			"IsAuthenticated": true,
			"CSRFToken":       ensureCSRFToken(w, r),
		})
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		title := strings.TrimSpace(r.FormValue("title"))
		description := strings.TrimSpace(r.FormValue("description"))
		link := strings.TrimSpace(r.FormValue("link"))

		if title == "" || description == "" {
			// Re-present the submitted values so the admin can correct them.
			w.WriteHeader(http.StatusBadRequest)
			p.render(w, "project_form.html", map[string]any{
				"Title":           "Edit Project",
				"Error":           "Title and description are required.",
				"Project":         &Project{ID: id, Title: title, Description: description, Link: link},
				"IsAuthenticated": true,
				"CSRFToken":       ensureCSRFToken(w, r),
			})
			return
		}

		conn, err := p.db.Conn(r.Context())
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		defer conn.Close()

		if err := updateProject(r.Context(), conn, id, title, description, link); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

func (p *Portfolio) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid project ID", http.StatusBadRequest)
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	conn, err := p.db.Conn(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	if err := deleteProject(r.Context(), conn, id); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (p *Portfolio) BlogNew(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		p.render(w, "blog_form.html", map[string]any{
			"Title":           "New Blog Post",
			"IsAuthenticated": true,
			"CSRFToken":       ensureCSRFToken(w, r),
		})
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		title := strings.TrimSpace(r.FormValue("title"))
		content := strings.TrimSpace(r.FormValue("content"))

		if title == "" || content == "" {
			w.WriteHeader(http.StatusBadRequest)
			p.render(w, "blog_form.html", map[string]any{
				"Title":           "New Blog Post",
				"Error":           "Title and content are required.",
				"IsAuthenticated": true,
				"CSRFToken":       ensureCSRFToken(w, r),
			})
			return
		}

		conn, err := p.db.Conn(r.Context())
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		defer conn.Close()

		if _, err := createBlogPost(r.Context(), conn, title, content); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

func (p *Portfolio) BlogEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodGet {
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
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}

		p.render(w, "blog_form.html", map[string]any{
			"Title":           fmt.Sprintf("Editing %q", post.Title),
			"Post":            post,
			"IsAuthenticated": true,
			"CSRFToken":       ensureCSRFToken(w, r),
		})
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		title := strings.TrimSpace(r.FormValue("title"))
		content := strings.TrimSpace(r.FormValue("content"))

		if title == "" || content == "" {
			w.WriteHeader(http.StatusBadRequest)
			p.render(w, "blog_form.html", map[string]any{
				"Title":           "Edit Blog Post",
				"Error":           "Title and content are required.",
				"Post":            &BlogPost{ID: id, Title: title, Content: content},
				"IsAuthenticated": true,
				"CSRFToken":       ensureCSRFToken(w, r),
			})
			return
		}

		conn, err := p.db.Conn(r.Context())
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		defer conn.Close()

		if err := updateBlogPost(r.Context(), conn, id, title, content); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

func (p *Portfolio) BlogDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if !parseFormWithCSRF(w, r) {
		return
	}

	conn, err := p.db.Conn(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	if err := deleteBlogPost(r.Context(), conn, id); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}
