package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"reflect"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"

	"travel/src/boot"
	"travel/src/config"
	"travel/src/lib"
	"travel/src/middlewares"
	"travel/src/pricing"
	"travel/src/storage"
	"travel/src/types"
)

const (
	apiPrefix string = "/api"
)

// server carries the dependencies shared by every handler.
type server struct {
	store    storage.Storage
	cache    *lib.CatalogCache
	notifier lib.Notifier
}

var decimalValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	_, err := pricing.ParseBase(fl.Field().String())
	return err == nil
}

var departureDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	_, err := types.ParseDepartureDate(fl.Field().String())
	return err == nil
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		v.RegisterValidation("decimal", decimalValidatorFunc)
		v.RegisterValidation("departuredate", departureDateValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders, middlewares.RequestID)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		if config.MaintenanceMode() {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": err.Error()})
			return
		}
	})
	return g
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func corsMiddleware() gin.HandlerFunc {
	if config.IsLocal() {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", middlewares.RequestIDHeader)
	cc.ExposeHeaders = []string{middlewares.RequestIDHeader}
	cc.AllowOriginFunc = func(origin string) bool {
		if config.APP_HOST == "" {
			return false
		}
		match, _ := regexp.MatchString(config.APP_HOST, origin)
		log.Printf("Origin matches %s: %v\n", origin, match)
		return match
	}
	return cors.New(cc)
}

// newRouter wires middleware and every API route against s.
func newRouter(s *server) *gin.Engine {
	registerValidators()

	router := setupRouter()
	router.Use(corsMiddleware())
	router = maintenanceModeMiddleware(router)

	api := apiGroup(router)
	healthHandlers(api, s)
	destinationHandlers(api, s)
	packageHandlers(api, s)
	reviewHandlers(api, s)
	bookingHandlers(api, s)
	searchHandlers(api, s)
	userHandlers(api, s)
	catalogHandlers(api, s)

	return router
}

func initLogger() {
	cwd, _ := os.Getwd()
	logsDir := path.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		log.Printf("Could not create logs directory: %s\n", err.Error())
		return
	}
	serverLogs := path.Join(logsDir, "server.log")
	apiLogs := path.Join(logsDir, "api.log")
	if !config.IsProd() {
		gin.ForceConsoleColor()
	}

	f, err := os.Create(apiLogs)
	if err == nil {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}))
}

func main() {
	initLogger()
	if config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := boot.InitStorage(ctx)
	if err != nil {
		log.Fatalf("Error initializing storage: %s\n", err.Error())
	}
	cache := boot.InitCache()
	notifier := boot.InitNotifier(ctx)
	boot.InitScheduler(store, cache)
	defer boot.Shutdown(notifier)

	router := newRouter(&server{store: store, cache: cache, notifier: notifier})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.API_PORT),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Listening on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %s\n", err.Error())
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %s\n", err.Error())
	}
}
