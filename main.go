package main

import (
	"context"
	"fmt"
	"follower_bot/dal"
	"follower_bot/logic"
	"follower_bot/server"
	"follower_bot/shared"
	"follower_bot/texts"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

var configPath string

var rootCmd = &cobra.Command{
	Use:   "follower_bot",
	Short: "GitHub follower bot: follows back, farms stargazers, cleans up non-followers",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP control surface and the background cycle (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Run a single follow-back, farming and cleanup cycle, then exit",
	Args:  cobra.NoArgs,
	RunE:  runCycle,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the JSONC config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cycleCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *shared.Config {
	if configPath != "" {
		os.Setenv("CONFIG", configPath)
	}
	cfg := shared.LoadConfig()
	logger = initLogger(cfg)
	return cfg
}

// Everything except the HTTP surface.
func coreProviders(cfg *shared.Config) fx.Option {
	provideConfig := func() *shared.Config {
		return cfg
	}
	provideLogger := func() shared.ILogger {
		return logger
	}
	return fx.Provide(
		provideConfig,
		provideLogger,
		shared.NewUserAgent,
		logic.NewMetrics,
		dal.NewDocStore,
		dal.NewRepo,
		texts.NewTexts,
		logic.NewGitHubClient,
		logic.NewActionExecutor,
		logic.NewSessionRecorder,
		logic.NewNotifier,
		logic.NewEngine,
	)
}

func runServe(cmd *cobra.Command, _ []string) error {

	cfg := loadConfig()

	app := fx.New(
		fx.NopLogger,
		coreProviders(cfg),
		fx.Provide(
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			asHandlerGroupDef(server.NewPublicHandlerGroup),
			asHandlerGroupDef(server.NewControlHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			registerHooks,
			func(*http.Server) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(cmd.Context(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		logger.Errorf("Failed to start: %v", err)
		return err
	}

	<-cmd.Context().Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

func runCycle(cmd *cobra.Command, _ []string) error {

	cfg := loadConfig()

	var engine logic.IEngine
	app := fx.New(
		fx.NopLogger,
		coreProviders(cfg),
		fx.Populate(&engine),
		fx.ErrorHook(&initErrorHandler{}),
	)
	if err := app.Err(); err != nil {
		return err
	}
	defer engine.Shutdown()

	ctx := cmd.Context()
	if err := engine.Init(ctx); err != nil {
		logger.Errorf("Cannot run cycle: %v", err)
		return err
	}
	if err := engine.RunCycle(ctx); err != nil {
		logger.Errorf("Cycle failed: %v", err)
		return err
	}
	return nil
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics, engine logic.IEngine) {
	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger.Printf("Application starting up")
				metrics.ServiceStarted()
				// A bot that cannot authenticate still serves /health and /status
				if err := engine.Init(ctx); err != nil {
					logger.Errorf("Bot failed to initialize: %v", err)
				}
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				engine.Shutdown()
				return nil
			},
		},
	)
}
