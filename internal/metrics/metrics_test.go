package metrics

import "testing"

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/api/portfolio/projects/2", "/api/portfolio/projects/{id}"},
		{"/api/portfolio/projects/123/x", "/api/portfolio/projects/{id}/x"},
		{"/api/auth/login", "/api/auth/login"},
		{"/", "/"},
	}
	for _, c := range cases {
		if got := NormalizePath(c.in); got != c.want {
			t.Errorf("NormalizePath(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}
