package portfolio

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crucial707/portfolio-api/cmd/cli/config"
	"github.com/crucial707/portfolio-api/cmd/cli/output"
)

// ==========================
// CLI Command Init
// ==========================
// InitPortfolio registers portfolio read commands on the root command.
// These endpoints are public; no token is needed.
func InitPortfolio(rootCmd *cobra.Command) {
	portfolioCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Browse the portfolio content",
	}

	portfolioCmd.AddCommand(profileCmd(), skillsCmd(), projectsCmd())
	rootCmd.AddCommand(portfolioCmd)
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile section",
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile struct {
				Name       string   `json:"name"`
				Title      string   `json:"title"`
				Bio        string   `json:"bio"`
				QuickFacts []string `json:"quickFacts"`
			}
			if err := fetch("/api/portfolio/profile", &profile); err != nil {
				return err
			}
			output.RenderTable(
				[]string{"Field", "Value"},
				[][]interface{}{
					{"Name", profile.Name},
					{"Title", profile.Title},
					{"Bio", profile.Bio},
					{"Quick facts", strings.Join(profile.QuickFacts, ", ")},
				},
			)
			return nil
		},
	}
}

func skillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			var skills []string
			if err := fetch("/api/portfolio/skills", &skills); err != nil {
				return err
			}
			rows := make([][]interface{}, 0, len(skills))
			for _, s := range skills {
				rows = append(rows, []interface{}{s})
			}
			output.RenderTable([]string{"Skill"}, rows)
			return nil
		},
	}
}

func projectsCmd() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects, or show one with --id",
		RunE: func(cmd *cobra.Command, args []string) error {
			type project struct {
				ID          int      `json:"id"`
				Title       string   `json:"title"`
				Description string   `json:"description"`
				Tech        []string `json:"tech"`
			}

			if id > 0 {
				var p project
				if err := fetch(fmt.Sprintf("/api/portfolio/projects/%d", id), &p); err != nil {
					return err
				}
				output.RenderTable(
					[]string{"ID", "Title", "Description", "Tech"},
					[][]interface{}{{p.ID, p.Title, p.Description, strings.Join(p.Tech, ", ")}},
				)
				return nil
			}

			var projects []project
			if err := fetch("/api/portfolio/projects", &projects); err != nil {
				return err
			}
			rows := make([][]interface{}, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []interface{}{p.ID, p.Title, strings.Join(p.Tech, ", ")})
			}
			output.RenderTable([]string{"ID", "Title", "Tech"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Show a single project by ID")
	return cmd
}

func fetch(path string, out interface{}) error {
	resp, err := http.Get(config.APIURL() + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
