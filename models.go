package main

import "time"

type Project struct {
	ID          int
	Title       string
	Description string
	Link        string
	Created     time.Time
}

type BlogPost struct {
	ID      int
	Title   string
	Content string
	Created time.Time
}
