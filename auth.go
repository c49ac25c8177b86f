package main

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookieName = "session"
	csrfCookieName    = "csrf"
	csrfFieldName     = "csrf_token"
	sessionDuration   = 24 * time.Hour
)

var (
	adminUsername string
	adminPassword string
	sessionSecret []byte
	secureCookies bool
)

func initAuth() {
	adminUsername = os.Getenv("ADMIN_USER")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	pass := os.Getenv("ADMIN_PASS")
	if pass == "" {
		log.Println("WARNING: ADMIN_PASS not set, using default password")
		pass = "password"
	}
	adminPassword = mustHashPassword(pass)

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("WARNING: SESSION_SECRET not set, using default key")
		secret = "dev"
	}
	sessionSecret = []byte(secret)

	secureCookies = os.Getenv("SECURE_COOKIES") == "true"
}

func mustHashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func checkPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(adminUsername)) == 1
	return checkPassword(adminPassword, password) && userOK
}

// Admin session tokens are held entirely client-side: an expiry timestamp
// signed with the session secret. Nothing is stored server-side.

func signSessionToken(expiresAt time.Time) string {
	payload := strconv.FormatInt(expiresAt.Unix(), 10)
	mac := hmac.New(sha256.New, sessionSecret)
	mac.Write([]byte("admin:" + payload))
	return payload + "." + hex.EncodeToString(mac.Sum(nil))
}

func verifySessionToken(token string) bool {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}

	expiry, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, sessionSecret)
	mac.Write([]byte("admin:" + payload))
	want := hex.EncodeToString(mac.Sum(nil))
	if subtle.ConstantTimeCompare([]byte(sig), []byte(want)) != 1 {
		return false
	}

	return time.Now().Unix() < expiry
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(sessionDuration.Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRF protection using double-submit cookie pattern

func setCSRFCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		Secure:   secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(sessionDuration.Seconds()),
	})
}

func getCSRFToken(r *http.Request) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func validateCSRF(r *http.Request) bool {
	cookieToken := getCSRFToken(r)
	formToken := r.FormValue(csrfFieldName)

	if cookieToken == "" || formToken == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(formToken)) == 1
}

// ensureCSRFToken returns existing token or creates a new one
func ensureCSRFToken(w http.ResponseWriter, r *http.Request) string {
	token := getCSRFToken(r)
	if token != "" {
		return token
	}

	token, err := generateToken()
	if err != nil {
		return ""
	}
	setCSRFCookie(w, token)
	return token
}

// isAuthenticated checks if the current request carries a valid admin session
func isAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	return verifySessionToken(cookie.Value)
}

// requireAdmin guards a handler behind the admin session. Without one the
// request is redirected to the login page and the handler never runs.
func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isAuthenticated(r) {
			http.Redirect(w, r, "/login?required=1", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (p *Portfolio) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := map[string]any{
			"Title":     "Admin Login",
			"CSRFToken": ensureCSRFToken(w, r),
		}
		if r.URL.Query().Get("required") == "1" {
			data["Error"] = "Please log in as admin to access this page."
		}
		p.render(w, "login.html", data)
		return
	}

	if r.Method == http.MethodPost {
		if !parseFormWithCSRF(w, r) {
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))

		if !checkCredentials(username, password) {
			w.WriteHeader(http.StatusUnauthorized)
			p.render(w, "login.html", map[string]any{
				"Title":     "Admin Login",
				"Error":     "Invalid username or password.",
				"CSRFToken": ensureCSRFToken(w, r),
			})
			return
		}

		token := signSessionToken(time.Now().Add(sessionDuration))
		setSessionCookie(w, token)
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

func (p *Portfolio) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func parseFormWithCSRF(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return false
	}
	if !validateCSRF(r) {
		http.Error(w, "Invalid CSRF token", http.StatusForbidden)
		return false
	}
	return true
}
