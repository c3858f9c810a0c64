package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	activityinadapter "gather/internal/modules/activity/adapter/in"
	activityoutadapter "gather/internal/modules/activity/adapter/out"
	activityin "gather/internal/modules/activity/port/in"
	activityservice "gather/internal/modules/activity/service"
	activityusecase "gather/internal/modules/activity/usecase"
	profileinadapter "gather/internal/modules/profile/adapter/in"
	profileoutadapter "gather/internal/modules/profile/adapter/out"
	profilein "gather/internal/modules/profile/port/in"
	profileservice "gather/internal/modules/profile/service"
	profileusecase "gather/internal/modules/profile/usecase"
	sessioninadapter "gather/internal/modules/session/adapter/in"
	sessionoutadapter "gather/internal/modules/session/adapter/out"
	sessionin "gather/internal/modules/session/port/in"
	sessionservice "gather/internal/modules/session/service"
	sessionusecase "gather/internal/modules/session/usecase"
	"gather/internal/platform/clock"
	"gather/internal/platform/config"
	"gather/internal/platform/id"
	"gather/internal/platform/logging"
	"gather/internal/platform/rest"
	uiapp "gather/internal/ui/app"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	ActivityCLI activityinadapter.CLIHandler
	ProfileCLI  profileinadapter.CLIHandler

	// usecases are kept for the TUI, whose views speak dto directly.
	sessions   sessionin.Usecase
	activities activityin.Usecase
	profiles   profilein.Usecase

	log *logging.Logger
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	log, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	client := rest.New(cfg.BaseURL, ids)

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		sessionoutadapter.NewFileTokenStore(cfg.TokenPath),
		sessionoutadapter.NewHTTPAuthAPI(client),
	))

	snapshot, err := activityoutadapter.NewSQLiteSnapshotStore(cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("new snapshot store: %w", err)
	}
	activityUC := activityusecase.NewInteractor(activityservice.NewActivityService(
		clk,
		activityoutadapter.NewSessionTokenAdapter(sessionUC),
		activityoutadapter.NewHTTPActivityAPI(client),
		snapshot,
	))

	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(
		profileoutadapter.NewSessionTokenAdapter(sessionUC),
		profileoutadapter.NewHTTPProfileAPI(client),
	))

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		ActivityCLI: activityinadapter.NewCLIHandler(activityUC),
		ProfileCLI:  profileinadapter.NewCLIHandler(profileUC),
		sessions:    sessionUC,
		activities:  activityUC,
		profiles:    profileUC,
		log:         log,
	}, nil
}

// Log returns the shared file logger.
func (a *App) Log() *logging.Logger { return a.log }

// Close releases the resources the app holds open.
func (a *App) Close() error {
	return a.log.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.sessions, app.activities, app.profiles, app.log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
