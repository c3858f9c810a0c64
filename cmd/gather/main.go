package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gather/internal/bootstrap"
	"gather/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var server, stateDir string

	root := &cobra.Command{
		Use:           "gather",
		Short:         "Terminal client for the Gather activity planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&server, "server", "", "backend base URL (default from GATHER_SERVER or config.yaml)")
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "directory for session, snapshot, and log files")

	root.AddCommand(newTUICmd(&server, &stateDir))
	root.AddCommand(newSignupCmd(&server, &stateDir))
	root.AddCommand(newLoginCmd(&server, &stateDir))
	root.AddCommand(newLogoutCmd(&server, &stateDir))
	root.AddCommand(newWhoamiCmd(&server, &stateDir))
	root.AddCommand(newActivityCmd(&server, &stateDir))
	root.AddCommand(newProfileCmd(&server, &stateDir))
	return root
}

func loadApp(server, stateDir string) (*bootstrap.App, error) {
	cfg, err := config.New(server, stateDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(server, stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the gather terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newSignupCmd(server, stateDir *string) *cobra.Command {
	var firstName, lastName, email, password string
	cmd := &cobra.Command{
		Use:   "signup --first-name <name> --last-name <name> --email <email> --password <password>",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.SessionCLI.SignUp(context.Background(), firstName, lastName, email, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed up as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func newLoginCmd(server, stateDir *string) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Sign in and persist the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.SessionCLI.SignIn(context.Background(), email, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func newLogoutCmd(server, stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.SignOut(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(server, stateDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.ProfileCLI.Show(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			return nil
		},
	}
}

func newActivityCmd(server, stateDir *string) *cobra.Command {
	activity := &cobra.Command{Use: "activity", Short: "Activity commands"}

	var filter string
	var cached bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			activities, err := app.ActivityCLI.List(context.Background(), filter, cached)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no activities")
				return nil
			}
			for _, a := range activities {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Title, a.Category, a.Location, a.StartDate)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&filter, "filter", "all", "listing filter: all|mine")
	listCmd.Flags().BoolVar(&cached, "cached", false, "serve the last snapshot without contacting the server")
	activity.AddCommand(listCmd)

	var title, description, location, category, image, startDate, endDate string
	addDraftFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&title, "title", "", "activity title")
		cmd.Flags().StringVar(&description, "description", "", "activity description")
		cmd.Flags().StringVar(&location, "location", "", "activity location")
		cmd.Flags().StringVar(&category, "category", "", "category: Outdoors|Indoors|General")
		cmd.Flags().StringVar(&image, "image", "", "path to the activity image")
		cmd.Flags().StringVar(&startDate, "start-date", "", "start date (2006-01-02)")
		cmd.Flags().StringVar(&endDate, "end-date", "", "end date (2006-01-02)")
	}

	createCmd := &cobra.Command{
		Use:   "create --title <title> ...",
		Short: "Create an activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			created, err := app.ActivityCLI.Create(context.Background(), title, description, location, category, image, startDate, endDate)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", created.Title, created.ID)
			return nil
		},
	}
	addDraftFlags(createCmd)
	activity.AddCommand(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id> --title <title> ...",
		Short: "Update an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return fmt.Errorf("activity id is required")
			}
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			updated, err := app.ActivityCLI.Update(context.Background(), args[0], title, description, location, category, image, startDate, endDate)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", updated.Title, updated.ID)
			return nil
		},
	}
	addDraftFlags(updateCmd)
	activity.AddCommand(updateCmd)

	activity.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.ActivityCLI.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return activity
}

func newProfileCmd(server, stateDir *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile commands"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.ProfileCLI.Show(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name:  %s %s\nemail: %s\n", user.FirstName, user.LastName, user.Email)
			if user.Bio != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bio:   %s\n", user.Bio)
			}
			if user.ImageURL != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "photo: %s\n", user.ImageURL)
			}
			return nil
		},
	})

	var firstName, lastName, bio, image, oldPassword, newPassword string
	updateCmd := &cobra.Command{
		Use:   "update --first-name <name> --last-name <name> ...",
		Short: "Update the current profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*server, *stateDir)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.ProfileCLI.Update(context.Background(), firstName, lastName, bio, image, oldPassword, newPassword)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile updated: %s %s\n", user.FirstName, user.LastName)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	updateCmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	updateCmd.Flags().StringVar(&bio, "bio", "", "short bio")
	updateCmd.Flags().StringVar(&image, "image", "", "path to the profile image")
	updateCmd.Flags().StringVar(&oldPassword, "old-password", "", "current password (required to change the password)")
	updateCmd.Flags().StringVar(&newPassword, "new-password", "", "new password")
	profile.AddCommand(updateCmd)

	return profile
}
