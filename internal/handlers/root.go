package handlers

import "net/http"

// Root serves a small self-describing index of the API surface.
func Root(w http.ResponseWriter, r *http.Request) {
	JSON(w, map[string]interface{}{
		"message": "Portfolio API is running",
		"health":  "/api/health",
		"endpoints": map[string]interface{}{
			"auth": map[string]string{
				"register":  "POST /api/auth/register",
				"login":     "POST /api/auth/login",
				"me":        "GET /api/auth/me (protected)",
				"verify":    "POST /api/auth/verify (protected)",
				"initAdmin": "POST /api/auth/init-admin (dev only)",
			},
			"portfolio": map[string]string{
				"all":         "/api/portfolio",
				"profile":     "/api/portfolio/profile",
				"skills":      "/api/portfolio/skills",
				"projects":    "/api/portfolio/projects",
				"projectById": "/api/portfolio/projects/{id}",
				"social":      "/api/portfolio/social",
				"preferences": "/api/preferences",
			},
		},
	}, http.StatusOK)
}

// Health is the liveness endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	}, http.StatusOK)
}
