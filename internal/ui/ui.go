package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/tartampluch/go-age/internal/server"
)

//go:embed Icon.png
var appIconData []byte

// GoAgeApp encapsulates the UI state, preferences, and core wiring.
type GoAgeApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server  *server.BirthdayServer
	Fetcher engine.VCardFetcher
	Clock   engine.Clock // Injected clock for testability (e.g. mocking time travel)

	Tray desktop.App
	Menu *fyne.Menu

	SupportedLanguages []string

	settingsWindow fyne.Window
}

// NewGoAgeApp constructs the application and wires dependencies.
func NewGoAgeApp(a fyne.App, ctx context.Context, srv *server.BirthdayServer, fetcher engine.VCardFetcher) *GoAgeApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &GoAgeApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Fetcher:            fetcher,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the application services and the main UI loop.
func (app *GoAgeApp) Run() {
	app.SetupI18n()

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyPort, app.Server.Port,
			config.LogKeyComponent, config.CompUI)

		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupport,
			config.LogKeyComponent, config.CompUI)
	}

	app.ShowMainWindow()
	app.App.Run()
}

// setupTrayMenu constructs the system tray menu.
func (app *GoAgeApp) setupTrayMenu() {
	showItem := fyne.NewMenuItem(app.GetMsg(config.TKeyMenuShow), func() {
		app.ShowMainWindow()
	})
	settingsItem := fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		showItem,
		fyne.NewMenuItemSeparator(),
		settingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *GoAgeApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	for i, item := range app.Menu.Items {
		switch i {
		case 0:
			item.Label = app.GetMsg(config.TKeyMenuShow)
		case 2:
			item.Label = app.GetMsg(config.TKeyMenuSettings)
		}
	}
	app.Menu.Refresh()
}
