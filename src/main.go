package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"transferd/src/boot"
	"transferd/src/config"
	"transferd/src/controllers"
	"transferd/src/middlewares"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api/v1"
)

var travelDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(config.TRAVEL_DATE_FORMAT, date)
	return err == nil
}

var travelTimeValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if _, err := time.Parse(config.TRAVEL_TIME_FORMAT, value); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", value)
	return err == nil
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("traveldate", travelDateValidatorFunc)
		v.RegisterValidation("traveltime", travelTimeValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.Use(middlewares.RequestID)
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func corsMiddleware() gin.HandlerFunc {
	cc := cors.DefaultConfig()
	cc.AllowAllOrigins = true
	cc.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cc.AllowHeaders = []string{"Content-Type", "Authorization", "X-Authorization"}
	cc.MaxAge = 24 * time.Hour
	return cors.New(cc)
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

// Configuration problems surface as 500 before any database access.
func requireDatabaseConfig(ctx *gin.Context) {
	if config.GetDSN() == "" {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database configuration error"})
	}
}

func requireAuthConfig(ctx *gin.Context) {
	if config.GetDSN() == "" || len(config.GetJWTSecret()) == 0 {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
	}
}

func authRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	auth := g.Group("/auth")
	auth.Use(requireAuthConfig)
	auth.
		POST("/register", func(ctx *gin.Context) {
			res, status, err := controllers.AuthRegister(ctx)
			if err != nil {
				log.Printf("[AuthRegister] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, res)
		}).
		POST("/login", func(ctx *gin.Context) {
			res, status, err := controllers.AuthLogin(ctx)
			if err != nil {
				log.Printf("[AuthLogin] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, res)
		}).
		GET("/verify", func(ctx *gin.Context) {
			claims, status, err := controllers.AuthVerify(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"valid": true,
				"user": gin.H{
					"id":    claims.UserID,
					"email": claims.Email,
					"role":  claims.Role,
				},
			})
		})
	return auth
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()
	boot.InitScheduler()

	router := setupRouter()
	router.Use(corsMiddleware())
	registerValidators()

	apiv1 := apiv1Group(router)
	authRoutes(apiv1)

	api := apiv1.Group("")
	api.Use(requireDatabaseConfig)
	publicHandlers(api)
	bookingHandlers(api)
	adminHandlers(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
