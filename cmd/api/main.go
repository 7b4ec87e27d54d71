package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadp "lenddesk-backend/internal/adapter/http"
	mw "lenddesk-backend/internal/adapter/middleware"
	"lenddesk-backend/internal/adapter/repository/mysql"
	"lenddesk-backend/internal/config"
	appDomain "lenddesk-backend/internal/domain/application"
	auditDomain "lenddesk-backend/internal/domain/audit"
	loanDomain "lenddesk-backend/internal/domain/loan"
	notifDomain "lenddesk-backend/internal/domain/notification"
	rateDomain "lenddesk-backend/internal/domain/rate"
	reviewDomain "lenddesk-backend/internal/domain/review"
	"lenddesk-backend/internal/infrastructure/cache"
	"lenddesk-backend/internal/infrastructure/db"
	ucApp "lenddesk-backend/internal/usecase/application"
	ucDisb "lenddesk-backend/internal/usecase/disbursement"
	ucLoan "lenddesk-backend/internal/usecase/loan"
	ucNotif "lenddesk-backend/internal/usecase/notification"
	ucRate "lenddesk-backend/internal/usecase/rate"
	ucReview "lenddesk-backend/internal/usecase/review"
)

func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql")
	}
	if err := gdb.AutoMigrate(
		&appDomain.LoanApplication{},
		&reviewDomain.LoanReview{},
		&loanDomain.Loan{},
		&notifDomain.Notification{},
		&auditDomain.AuditLog{},
		&rateDomain.RateTier{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis")
	}

	appRepo := mysql.NewApplicationRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	rateRepo := mysql.NewRateRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	appHandler := httpadp.NewApplicationHandler(
		ucApp.NewUsecase(appRepo, guow),
		ucReview.NewUsecase(guow),
		ucDisb.NewUsecase(guow),
	)
	loanHandler := httpadp.NewLoanHandler(ucLoan.NewUsecase(loanRepo, appRepo, guow))
	rateHandler := httpadp.NewRateHandler(ucRate.NewUsecase(rateRepo, guow))
	notifHandler := httpadp.NewNotificationHandler(ucNotif.NewUsecase(notifRepo))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	auth := mw.Auth([]byte(cfg.JWTSecret))
	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	api := e.Group("", auth)

	api.POST("/applications", appHandler.Create, mw.RequireRoles(appDomain.RoleApplicant), idemp)
	api.GET("/applications/:application_id", appHandler.Get)
	api.POST("/applications/:application_id/info", appHandler.SubmitInfo, mw.RequireRoles(appDomain.RoleApplicant), idemp)
	api.POST("/applications/:application_id/review", appHandler.Review,
		mw.RequireRoles(appDomain.RoleOfficer, appDomain.RoleApprover), idemp)
	api.POST("/applications/:application_id/disburse", appHandler.Disburse,
		mw.RequireRoles(appDomain.RoleApprover, appDomain.RoleAdmin), idemp)

	api.POST("/loans", loanHandler.CreateLoan, mw.RequireRoles(appDomain.RoleOfficer, appDomain.RoleAdmin), idemp)
	api.GET("/loans/:loan_id", loanHandler.GetLoan,
		mw.RequireRoles(appDomain.RoleOfficer, appDomain.RoleApprover, appDomain.RoleAdmin))

	api.GET("/rates", rateHandler.List)
	api.PUT("/rates", rateHandler.Upsert, mw.RequireRoles(appDomain.RoleAdmin), idemp)

	api.GET("/notifications", notifHandler.List)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}
