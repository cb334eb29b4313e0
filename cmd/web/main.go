// Command web is the developer test console for the Portfolio API. It
// renders server-side pages that exercise every API endpoint: register,
// login, admin bootstrap, token verification, and the portfolio reads.
// The JWT lives in an HttpOnly cookie; the console never stores users
// itself, it only talks to the API.
package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

const (
	cookieName  = "portfolio_token"
	defaultPort = "3000"
	defaultAPI  = "http://localhost:3001"
	envWebPort  = "PORTFOLIO_WEB_PORT"
	envAPIURL   = "PORTFOLIO_API_URL"
)

func main() {
	port := getEnv(envWebPort, defaultPort)
	apiBase := getEnv(envAPIURL, defaultAPI)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health (no auth, no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Public
	r.Get("/login", loginForm)
	r.Post("/login", loginSubmit(apiBase))
	r.Post("/register", registerSubmit(apiBase))
	r.Post("/init-admin", initAdminSubmit(apiBase))
	r.Get("/logout", logout)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(requireAuth(apiBase))
		r.Get("/", redirectConsole)
		r.Get("/console", console(apiBase))
	})

	log.Printf("test console listening on :%s (API at %s)", port, apiBase)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// requireAuth redirects to /login if the cookie is missing or if the API
// rejects the token (401 no token, 403 invalid/expired).
func requireAuth(apiBase string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := r.Cookie(cookieName)
			if err != nil || token.Value == "" {
				http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
				return
			}
			// Validate with the API so expired tokens bounce to login before any page loads.
			_, status, _ := apiGet(apiBase, "/api/auth/me", token.Value)
			if status == http.StatusUnauthorized || status == http.StatusForbidden {
				clearAuthAndRedirectToLogin(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectConsole(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/console", http.StatusFound)
}

func loginForm(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		http.Redirect(w, r, "/console", http.StatusFound)
		return
	}
	renderTemplate(w, "login.html", nil)
}

func loginSubmit(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		payload := map[string]string{
			"email":    strings.TrimSpace(r.FormValue("email")),
			"password": r.FormValue("password"),
		}
		body, _ := json.Marshal(payload)

		data, status, err := apiPost(apiBase, "/api/auth/login", "", body)
		if err != nil {
			renderTemplate(w, "login.html", map[string]string{"Error": "Cannot reach API: " + err.Error()})
			return
		}
		if status != http.StatusOK {
			renderTemplate(w, "login.html", map[string]string{"Error": apiErrorMessage(data)})
			return
		}
		setTokenAndRedirect(w, r, data)
	}
}

func registerSubmit(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		payload := map[string]string{
			"email":    strings.TrimSpace(r.FormValue("email")),
			"password": r.FormValue("password"),
			"name":     strings.TrimSpace(r.FormValue("name")),
		}
		body, _ := json.Marshal(payload)

		data, status, err := apiPost(apiBase, "/api/auth/register", "", body)
		if err != nil {
			renderTemplate(w, "login.html", map[string]string{"Error": "Cannot reach API: " + err.Error()})
			return
		}
		if status != http.StatusCreated {
			renderTemplate(w, "login.html", map[string]string{"Error": apiErrorMessage(data)})
			return
		}
		setTokenAndRedirect(w, r, data)
	}
}

// initAdminSubmit triggers the one-time admin bootstrap and shows the
// echoed credentials on the login page. The API refuses it once any user
// exists, or entirely in prod.
func initAdminSubmit(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, status, err := apiPost(apiBase, "/api/auth/init-admin", "", []byte("{}"))
		if err != nil {
			renderTemplate(w, "login.html", map[string]string{"Error": "Cannot reach API: " + err.Error()})
			return
		}
		if status != http.StatusCreated {
			renderTemplate(w, "login.html", map[string]string{"Error": apiErrorMessage(data)})
			return
		}
		var out struct {
			Credentials struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			} `json:"credentials"`
		}
		_ = json.Unmarshal(data, &out)
		renderTemplate(w, "login.html", map[string]string{
			"Notice": fmt.Sprintf("Admin initialized. Email: %s Password: %s", out.Credentials.Email, out.Credentials.Password),
		})
	}
}

// setTokenAndRedirect stores the token from an auth response in the
// cookie and continues to the console.
func setTokenAndRedirect(w http.ResponseWriter, r *http.Request, data []byte) {
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &out); err != nil || out.Token == "" {
		renderTemplate(w, "login.html", map[string]string{"Error": "Invalid auth response"})
		return
	}

	next := r.URL.Query().Get("next")
	if next == "" {
		next = "/console"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    out.Token,
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, next, http.StatusFound)
}

func logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// clearAuthAndRedirectToLogin clears the token cookie and redirects to login with next=current path.
func clearAuthAndRedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	next := r.URL.Path
	if r.URL.RawQuery != "" {
		next += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, "/login?next="+url.QueryEscape(next), http.StatusFound)
}

// console renders one page that exercises every endpoint: the current
// user, the raw verify response, and each portfolio section.
func console(apiBase string) http.HandlerFunc {
	type section struct {
		Title  string
		Path   string
		Status int
		Body   string
	}
	return func(w http.ResponseWriter, r *http.Request) {
		token, _ := r.Cookie(cookieName)

		var me struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
			Role  string `json:"role"`
		}
		meData, status, err := apiGet(apiBase, "/api/auth/me", token.Value)
		if err != nil {
			http.Error(w, "cannot reach API: "+err.Error(), http.StatusBadGateway)
			return
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			clearAuthAndRedirectToLogin(w, r)
			return
		}
		_ = json.Unmarshal(meData, &me)

		verifyData, verifyStatus, _ := apiPost(apiBase, "/api/auth/verify", token.Value, nil)

		sections := []section{
			{Title: "Full portfolio", Path: "/api/portfolio"},
			{Title: "Profile", Path: "/api/portfolio/profile"},
			{Title: "Skills", Path: "/api/portfolio/skills"},
			{Title: "Projects", Path: "/api/portfolio/projects"},
			{Title: "Project #1", Path: "/api/portfolio/projects/1"},
			{Title: "Social links", Path: "/api/portfolio/social"},
			{Title: "Preferences", Path: "/api/preferences"},
			{Title: "Health", Path: "/api/health"},
		}
		for i := range sections {
			data, status, err := apiGet(apiBase, sections[i].Path, "")
			if err != nil {
				sections[i].Body = err.Error()
				continue
			}
			sections[i].Status = status
			sections[i].Body = prettyJSON(data)
		}

		renderTemplate(w, "console.html", map[string]interface{}{
			"Me":           me,
			"VerifyStatus": verifyStatus,
			"VerifyBody":   prettyJSON(verifyData),
			"Sections":     sections,
		})
	}
}

// apiGet performs GET to the API with an optional bearer token.
func apiGet(apiBase, path, token string) ([]byte, int, error) {
	req, _ := http.NewRequest("GET", apiBase+path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return data, resp.StatusCode, nil
}

// apiPost performs POST to the API with an optional token and JSON body.
func apiPost(apiBase, path, token string, body []byte) ([]byte, int, error) {
	req, _ := http.NewRequest("POST", apiBase+path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return data, resp.StatusCode, nil
}

func apiErrorMessage(data []byte) string {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return string(data)
}

func prettyJSON(data []byte) string {
	var buf strings.Builder
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return string(data)
	}
	return buf.String()
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if name == "login.html" {
		t := template.Must(template.New("").Parse(string(content)))
		_ = t.ExecuteTemplate(w, "login", data)
		return
	}

	layout, _ := templatesFS.ReadFile("templates/layout.html")
	t := template.Must(template.New("").Parse(string(layout)))
	t = template.Must(t.New("").Parse(string(content)))
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template execute: %v", err)
	}
}
