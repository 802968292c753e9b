package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	config "digiwork-hub.com/digiwork-hub/internal/configs"
	httpapi "digiwork-hub.com/digiwork-hub/internal/http"
	middleware "digiwork-hub.com/digiwork-hub/internal/http/middlewares"
	"digiwork-hub.com/digiwork-hub/internal/mail"
	"digiwork-hub.com/digiwork-hub/internal/notify"
	"digiwork-hub.com/digiwork-hub/internal/projection"
	"digiwork-hub.com/digiwork-hub/internal/queue"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
	"digiwork-hub.com/digiwork-hub/internal/services"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the HTTP API together with its notification workers and file reaper",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		store := repository.NewStore(db)
		files, err := storage.NewOsFileStore(cfg.UploadRoot)
		if err != nil {
			return err
		}

		transport, closeTransport, err := newTransport(cfg)
		if err != nil {
			return err
		}
		defer closeTransport()

		dispatcher := notify.NewDispatcher(
			store.Users,
			transport,
			cfg.NotifyWorkers,
			cfg.NotifyQueueSize,
			cfg.NotifyParallelism,
			cfg.NotifyTimeout,
		)

		patterns, err := rules.CompilePatterns(cfg.NameRegex, cfg.EmailRegex, cfg.PasswordRegex)
		if err != nil {
			return err
		}

		svc := services.New(services.Deps{
			Store:    store,
			Files:    files,
			Notifier: dispatcher,
			Mailer:   newMailer(cfg),
			Tokens:   auth.NewTokens(cfg.SecretKey, cfg.TokenTTL),
			Hasher:   auth.NewHasher(cfg.BcryptCost),
			Patterns: patterns,
		})

		reaper := services.NewReaper(store, files, cfg.ReaperGrace)
		if err := reaper.Start(cfg.ReaperSchedule); err != nil {
			return fmt.Errorf("schedule reaper: %w", err)
		}

		e := echo.New()
		e.HideBanner = true
		e.JSONSerializer = httpapi.Serializer{}
		e.HTTPErrorHandler = httpapi.ErrorHandler
		e.Use(echomw.Recover())
		e.Use(echomw.BodyLimit(cfg.MaxBodySize))
		e.Use(middleware.RequestLogger(zap.L()))

		handler := httpapi.NewHandler(svc, projection.NewProjector(store.Users), files)
		httpapi.Register(e, handler, svc.Auth)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			zap.L().Info("HTTP server listening", zap.String("addr", cfg.AppURL()))
			if err := e.Start(cfg.AppURL()); err != nil && err != http.ErrServerClosed {
				zap.L().Error("server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			zap.L().Warn("http shutdown", zap.Error(err))
		}
		dispatcher.Shutdown(shutdownCtx)
		reaper.Stop(shutdownCtx)

		zap.L().Info("server shut down gracefully")
		return nil
	},
}

// newTransport builds the push transport named by NOTIFY_TRANSPORT. The
// returned function releases any client it opened.
func newTransport(cfg *config.Config) (notify.Transport, func(), error) {
	switch cfg.NotifyTransport {
	case "http":
		return notify.NewHTTPTransport(cfg.PushGatewayURL, cfg.PushServerKey, cfg.NotifyTimeout), func() {}, nil
	case "redis":
		client, err := config.NewRedisClient(cfg.RedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return queue.NewRedisPushQueue(client, cfg.RedisPushKey), client.Close, nil
	case "telegram":
		t, err := notify.NewTelegramTransport(cfg.TelegramToken, cfg.NotifyTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("telegram bot: %w", err)
		}
		return t, func() {}, nil
	default:
		return notify.LogTransport{}, func() {}, nil
	}
}

func newMailer(cfg *config.Config) mail.Mailer {
	switch cfg.MailTransport {
	case "smtp":
		return mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.NotifyTimeout)
	case "resend":
		return mail.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom, cfg.NotifyTimeout)
	default:
		return mail.LogMailer{}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
