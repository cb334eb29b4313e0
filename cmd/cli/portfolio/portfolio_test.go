package portfolio

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestSkillsCmd_TableOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/portfolio/skills" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]string{"Go", "React"})
	}))
	defer srv.Close()
	t.Setenv("PORTFOLIO_API_URL", srv.URL)

	cmd := skillsCmd()
	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("skills command: %v", err)
		}
	})

	if !strings.Contains(out, "Go") || !strings.Contains(out, "React") {
		t.Fatalf("expected skills in output, got: %s", out)
	}
}

func TestProjectsCmd_ByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/portfolio/projects/2" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": 2, "title": "Task Management App", "description": "x", "tech": []string{"React"},
		})
	}))
	defer srv.Close()
	t.Setenv("PORTFOLIO_API_URL", srv.URL)

	cmd := projectsCmd()
	cmd.SetArgs([]string{"--id", "2"})
	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("projects command: %v", err)
		}
	})

	if !strings.Contains(out, "Task Management App") {
		t.Fatalf("expected project title in output, got: %s", out)
	}
}

func TestProjectsCmd_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Project not found"})
	}))
	defer srv.Close()
	t.Setenv("PORTFOLIO_API_URL", srv.URL)

	cmd := projectsCmd()
	cmd.SetArgs([]string{"--id", "99"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "Project not found") {
		t.Fatalf("want 'Project not found' error, got: %v", err)
	}
}
