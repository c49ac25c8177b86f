package main

import (
	"database/sql"
	"flag"
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

type Portfolio struct {
	db        *sql.DB
	templates map[string]*template.Template
}

func NewPortfolio(db *sql.DB) *Portfolio {
	return &Portfolio{
		db:        db,
		templates: loadTemplates(),
	}
}

func main() {
	initOnly := flag.Bool("init-db", false, "initialize the database schema and exit")
	flag.Parse()

	godotenv.Load()

	initAuth()

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "portfolio.db"
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = initSchema(db); err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	if *initOnly {
		log.Println("Initialized the database.")
		return
	}

	portfolio := NewPortfolio(db)

	fs := http.FileServer(http.Dir("static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	// Public routes
	http.HandleFunc("/", portfolio.Home)
	http.HandleFunc("/project/{id}", portfolio.ProjectDetail)
	http.HandleFunc("/blog/{id}", portfolio.BlogDetail)
	http.HandleFunc("/login", portfolio.Login)
	http.HandleFunc("/logout", portfolio.Logout)

	// Admin routes
	http.HandleFunc("/admin/dashboard", requireAdmin(portfolio.Dashboard))
	http.HandleFunc("/admin/project/new", requireAdmin(portfolio.ProjectNew))
	http.HandleFunc("/admin/project/edit/{id}", requireAdmin(portfolio.ProjectEdit))
	http.HandleFunc("/admin/project/delete/{id}", requireAdmin(portfolio.ProjectDelete))
	http.HandleFunc("/admin/blog/new", requireAdmin(portfolio.BlogNew))
	http.HandleFunc("/admin/blog/edit/{id}", requireAdmin(portfolio.BlogEdit))
	http.HandleFunc("/admin/blog/delete/{id}", requireAdmin(portfolio.BlogDelete))

	log.Println("Server starting on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
