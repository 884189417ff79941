package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"eventstay/internal/cache"
	"eventstay/internal/config"
	"eventstay/internal/database"
	"eventstay/internal/middleware"
	"eventstay/internal/modules/auth"
	"eventstay/internal/modules/booking"
	jwtsvc "eventstay/internal/pkg/jwt"
	"eventstay/internal/pkg/mq"
	"eventstay/internal/realtime"
	"eventstay/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	userRepo := repository.NewUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	authenticator := middleware.NewAuthenticator(j, sessionRepo)

	authService := auth.NewService(userRepo, sessionRepo, j)
	authHandler := auth.NewHandler(authService)

	// Optional collaborators stay untyped nil when disabled.
	var bookingCache booking.BookingCache
	if rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); rdb != nil {
		defer rdb.Close()
		bookingCache = cache.NewBookingCache(rdb, cfg.BookingCacheTTL)
		log.Printf("booking cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.BookingCacheTTL)
	}

	hub := realtime.NewHub()
	publishers := booking.Publishers{hub}
	if cfg.RabbitMQURL != "" {
		pub, err := mq.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			log.Printf("rabbitmq disabled: %v", err)
		} else {
			defer pub.Close()
			publishers = append(publishers, pub)
			log.Printf("booking events exchange=%s", cfg.EventsExchange)
		}
	}

	bookingService := booking.NewService(bookingRepo, enrollmentRepo, ticketRepo, roomRepo, bookingCache, publishers)
	bookingHandler := booking.NewHandler(bookingService)
	wsHandler := realtime.NewHandler(hub, authenticator)

	if cfg.AppEnv != "dev" && cfg.AppEnv != "test" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	{
		authHandler.RegisterPublicRoutes(public)
		wsHandler.RegisterRoutes(public)
	}

	protected := r.Group("/")
	protected.Use(middleware.JWTAuth(authenticator))
	{
		bookingHandler.RegisterRoutes(protected)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s env=%s", srv.Addr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("stopped")
}
