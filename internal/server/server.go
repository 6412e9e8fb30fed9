package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prodcal/internal/config"
	"prodcal/internal/handler"
	"prodcal/internal/repository"
	"prodcal/internal/schedule"
	"prodcal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine  *gin.Engine
	DB      *gorm.DB
	Config  *config.Config
	Planner *schedule.Planner
	Store   *store.Store

	cron *cron.Cron
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM; DB_DISABLED=true runs fully in memory
	var db *gorm.DB
	var persister store.Persister
	if cfg.DBDisabled {
		log.Println("⚠️  Database disabled, running in-memory only")
	} else {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		if err := repository.Migrate(db); err != nil {
			return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		persister = repository.NewPersister(db)
		log.Println("✅ Connected to database")
	}

	st := store.New(persister)
	if err := st.LoadInitial(context.Background()); err != nil {
		return nil, fmt.Errorf("❌ failed to load initial state: %w", err)
	}
	planner := schedule.NewPlanner(st, schedule.SystemClock)

	// Setup Gin
	r := gin.Default()

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(planner, st)
	scheduleHandler := handler.NewScheduleHandler(planner, st)
	productionHandler := handler.NewProductionHandler(planner, st)
	notificationHandler := handler.NewNotificationHandler(planner, st)
	personHandler := handler.NewPersonHandler(st, cfg.PersonDeletePolicy)
	clientHandler := handler.NewClientHandler(st, cfg.ClientDeletePolicy)
	projectHandler := handler.NewProjectHandler(st)

	// Task routes
	r.GET("/tasks", taskHandler.List)
	r.POST("/tasks", taskHandler.Create)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)

	// Schedule conflict routes
	r.GET("/schedule/conflict", scheduleHandler.GetConflict)
	r.POST("/schedule/push", scheduleHandler.Push)
	r.POST("/schedule/cancel", scheduleHandler.Cancel)

	// Production composer
	r.POST("/productions", productionHandler.Create)

	// Notification routes
	r.GET("/notifications", notificationHandler.List)
	r.POST("/notifications/refresh", notificationHandler.Refresh)
	r.POST("/notifications/read-all", notificationHandler.ReadAll)

	// Team routes
	r.GET("/people", personHandler.List)
	r.POST("/people", personHandler.Create)
	r.PUT("/people/:id", personHandler.Update)
	r.DELETE("/people/:id", personHandler.Delete)

	// Client routes
	r.GET("/clients", clientHandler.List)
	r.POST("/clients", clientHandler.Create)
	r.PUT("/clients/:id", clientHandler.Update)
	r.DELETE("/clients/:id", clientHandler.Delete)
	r.GET("/clients/:id/projects", clientHandler.ListProjects)

	// Project routes
	r.GET("/projects", projectHandler.List)
	r.POST("/projects", projectHandler.Create)
	r.PUT("/projects/:id", projectHandler.Update)
	r.DELETE("/projects/:id", projectHandler.Delete)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Daily reminder scan
	c := cron.New()
	if _, err := c.AddFunc(cfg.NotifyCron, func() {
		planner.RefreshNotifications()
		log.Println("🔔 Daily reminder scan completed")
	}); err != nil {
		return nil, fmt.Errorf("❌ invalid NOTIFY_CRON %q: %w", cfg.NotifyCron, err)
	}

	return &Server{
		Engine:  r,
		DB:      db,
		Config:  cfg,
		Planner: planner,
		Store:   st,
		cron:    c,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	// Run one scan at startup so the feed is current before the first tick
	s.Planner.RefreshNotifications()
	s.cron.Start()

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	s.cron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
