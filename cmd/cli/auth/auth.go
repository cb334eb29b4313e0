package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/crucial707/portfolio-api/cmd/cli/config"
	"github.com/crucial707/portfolio-api/cmd/cli/output"
)

// ==========================
// CLI Command Init
// ==========================
// InitAuth registers auth-related CLI commands on the root command.
func InitAuth(rootCmd *cobra.Command) {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Register, log in, and inspect the current session",
		Long: `Authenticate against the Portfolio API.
Stores the JWT token locally for subsequent CLI commands.`,
	}

	authCmd.AddCommand(registerCmd(), loginCmd(), logoutCmd(), meCmd(), verifyCmd(), initAdminCmd())
	rootCmd.AddCommand(authCmd)
}

type tokenUserResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"credentials"`
}

func registerCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user and store its token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp tokenUserResponse
			payload := map[string]string{"email": email, "password": password, "name": name}
			if err := postJSON("/api/auth/register", "", payload, &resp); err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}
			if err := config.SaveToken(resp.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Printf("%s Logged in as %s (id %d).\n", resp.Message, resp.User.Email, resp.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to register")
	cmd.Flags().StringVar(&password, "password", "", "Password for the new account")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the Portfolio API",
		Long:  "Authenticate with the Portfolio API and store a JWT token for subsequent CLI commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp tokenUserResponse
			payload := map[string]string{"email": email, "password": password}
			if err := postJSON("/api/auth/login", "", payload, &resp); err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}
			if resp.Token == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}
			if err := config.SaveToken(resp.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Println("Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the locally stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearToken(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the user the stored token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return err
			}
			var user struct {
				ID    int    `json:"id"`
				Email string `json:"email"`
				Name  string `json:"name"`
				Role  string `json:"role"`
			}
			if err := getJSON("/api/auth/me", token, &user); err != nil {
				return fmt.Errorf("failed to fetch current user: %w", err)
			}
			output.RenderTable(
				[]string{"ID", "Email", "Name", "Role"},
				[][]interface{}{{user.ID, user.Email, user.Name, user.Role}},
			)
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check whether the stored token is still valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return err
			}
			var resp struct {
				Valid bool `json:"valid"`
				User  struct {
					UserID int    `json:"userId"`
					Email  string `json:"email"`
					Role   string `json:"role"`
					Exp    int64  `json:"exp"`
				} `json:"user"`
			}
			if err := postJSON("/api/auth/verify", token, nil, &resp); err != nil {
				return fmt.Errorf("token rejected: %w", err)
			}
			fmt.Printf("Token valid for %s (role %s), expires at unix %d.\n", resp.User.Email, resp.User.Role, resp.User.Exp)
			return nil
		},
	}
}

func initAdminCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "init-admin",
		Short: "Bootstrap the first admin account (dev only)",
		Long: `Create the initial admin account on a fresh server.
Only works while no users exist; the server echoes the credentials back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp tokenUserResponse
			payload := map[string]string{"email": email, "password": password, "name": name}
			if err := postJSON("/api/auth/init-admin", "", payload, &resp); err != nil {
				return fmt.Errorf("failed to initialize admin: %w", err)
			}
			if err := config.SaveToken(resp.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			fmt.Printf("%s\nEmail: %s\nPassword: %s\n", resp.Message, resp.Credentials.Email, resp.Credentials.Password)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (default admin@example.com)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (default admin123)")
	cmd.Flags().StringVar(&name, "name", "", "Admin display name (default Admin User)")
	return cmd
}

// postJSON posts a payload to the API, optionally with a bearer token, and
// decodes the response into out. Non-2xx responses surface the server's
// error message.
func postJSON(path, token string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest("POST", config.APIURL()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return doJSON(req, out)
}

func getJSON(path, token string, out interface{}) error {
	req, err := http.NewRequest("GET", config.APIURL()+path, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return doJSON(req, out)
}

func doJSON(req *http.Request, out interface{}) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
