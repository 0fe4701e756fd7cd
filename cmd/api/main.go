package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "crefinso-portal/internal/adapter/http"
	mw "crefinso-portal/internal/adapter/middleware"
	"crefinso-portal/internal/adapter/remote"
	"crefinso-portal/internal/config"
	"crefinso-portal/internal/infrastructure/cache"
	"crefinso-portal/internal/infrastructure/session"
	"crefinso-portal/internal/usecase/dashboard"
	paymentuc "crefinso-portal/internal/usecase/payment"
	"crefinso-portal/internal/usecase/report"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	sessions := session.NewStore(rdb, cfg.SessionTTL())

	// One HTTP client to the remote API; the session store supplies the
	// bearer token per request.
	api := remote.New(cfg.APIBaseURL, cfg.HTTPTimeout(), sessions)
	clients := remote.NewClientService(api)
	requests := remote.NewRequestService(api)
	loans := remote.NewLoanService(api)
	payments := remote.NewPaymentService(api)
	users := remote.NewUserService(api)
	employments := remote.NewEmploymentService(api)

	dashUC := dashboard.NewUsecase(clients, requests, loans, payments, users)
	reportUC := report.NewUsecase(payments)
	paymentUC := paymentuc.NewUsecase(loans, payments)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(remote.NewAuthService(api), sessions)
	dashH := httpadp.NewDashboardHandler(dashUC)
	reportH := httpadp.NewReportHandler(reportUC)
	paymentH := httpadp.NewPaymentHandler(payments, paymentUC)
	clientH := httpadp.NewClientHandler(clients)
	requestH := httpadp.NewRequestHandler(requests)
	loanH := httpadp.NewLoanHandler(loans)
	employmentH := httpadp.NewEmploymentHandler(employments)
	userH := httpadp.NewUserHandler(users)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	e.GET("/health", h.Health)
	e.POST("/login", authH.Login)

	// Everything past login needs an X-Session-Id; mutations also carry an
	// X-Request-Id for dedup.
	g := e.Group("", mw.Session(), mw.Idempotency(rdb, cfg.IdempTTL()))
	g.POST("/logout", authH.Logout)

	g.GET("/dashboard", dashH.Overview)
	g.GET("/payments/:id/full", dashH.FullPayment)

	g.GET("/reports/range", reportH.Range)
	g.GET("/reports/weekly", reportH.Weekly)
	g.GET("/reports/monthly", reportH.Monthly)

	g.GET("/payments", paymentH.List)
	g.POST("/payments", paymentH.Create)
	g.GET("/payments/upcoming/:loanId", paymentH.Upcoming)
	g.GET("/payments/overdue", paymentH.Overdue)
	g.POST("/payments/preview", paymentH.Preview)
	g.POST("/payments/process-automatic", paymentH.ProcessAutomatic)
	g.GET("/payments/:id", paymentH.Get)
	g.PUT("/payments/:id", paymentH.Update)
	g.DELETE("/payments/:id", paymentH.Delete)

	g.GET("/clients", clientH.List)
	g.POST("/clients", clientH.Create)
	g.GET("/clients/:id", clientH.Get)
	g.PUT("/clients/:id", clientH.Update)
	g.DELETE("/clients/:id", clientH.Delete)

	g.GET("/requests", requestH.List)
	g.POST("/requests", requestH.Create)
	g.GET("/requests/:id", requestH.Get)
	g.PUT("/requests/:id", requestH.Update)
	g.DELETE("/requests/:id", requestH.Delete)

	g.GET("/loans", loanH.List)
	g.POST("/loans", loanH.Create)
	g.GET("/loans/:id", loanH.Get)
	g.PUT("/loans/:id", loanH.Update)
	g.DELETE("/loans/:id", loanH.Delete)

	g.GET("/employments", employmentH.List)
	g.POST("/employments", employmentH.Create)
	g.GET("/employments/:id", employmentH.Get)
	g.PUT("/employments/:id", employmentH.Update)
	g.DELETE("/employments/:id", employmentH.Delete)

	g.GET("/users", userH.List)
	g.POST("/users", userH.Create)
	g.GET("/users/:id", userH.Get)
	g.PUT("/users/:id", userH.Update)
	g.DELETE("/users/:id", userH.Delete)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
