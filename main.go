package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/torus-maze/api"
	api_i "github.com/beka-birhanu/torus-maze/api/i"
	"github.com/beka-birhanu/torus-maze/api/identity"
	"github.com/beka-birhanu/torus-maze/api/mazeapi"
	"github.com/beka-birhanu/torus-maze/config"
	"github.com/beka-birhanu/torus-maze/infrastruture/cache"
	"github.com/beka-birhanu/torus-maze/infrastruture/repo"
	"github.com/beka-birhanu/torus-maze/infrastruture/token"
	"github.com/beka-birhanu/torus-maze/logger"
	"github.com/beka-birhanu/torus-maze/service"
	"github.com/beka-birhanu/torus-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const operatorTokenLifetime = 24 * time.Hour

// Global variables for dependencies
var (
	redisClient    *redis.Client
	solutionCache  i.SolutionCache
	mapRepo        i.MapRepo
	mazeService    i.MazeService
	mapController  api_i.Controller
	jwtTokenizer   i.Tokenizer
	authMiddleware gin.HandlerFunc
	router         *api.Router
	appLogger      *logger.Logger
)

func initRedis(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Info("REDIS_ADDR not set, solution cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis ping failed, solution cache disabled: %v", err))
		_ = client.Close()
		return
	}

	redisClient = client
	appLogger.Info("Connected to Redis")
}

func initSolutionCache() {
	if redisClient == nil {
		return
	}

	c, err := cache.NewRedisSolutionCache(redisClient, "", config.Envs.SolutionTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solution cache: %v", err))
		os.Exit(1)
	}
	solutionCache = c
	appLogger.Info("Solution cache initialized")
}

func initMapRepo() {
	mapRepo = repo.NewMapRepo()
	appLogger.Info("Map repository initialized")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(&service.Config{
		Repo:        mapRepo,
		Cache:       solutionCache,
		Logger:      mazeLogger,
		MaxMapCells: config.Envs.MaxMapCells,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMapController() {
	var err error
	mapController, err = mazeapi.NewMapController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Map controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthMiddleware() {
	if config.Envs.JWTSecret == "" {
		appLogger.Warning("JWT_SECRET not set, map creation and deletion are open to everyone")
		return
	}

	initJWTTokenizer()
	authMiddleware = identity.Authoriz(jwtTokenizer)
	appLogger.Info("Authorization middleware initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 config.Envs.BaseURL,
		Controllers:             []api_i.Controller{mapController},
		AuthorizationMiddleware: authMiddleware,
		CORSOrigins:             config.Envs.CORSOrigins,
	})
	appLogger.Info("Router initialized")
}

// printOperatorToken handles "token <subject>": it prints a bearer token for
// the protected routes and exits.
func printOperatorToken(subject string) {
	if config.Envs.JWTSecret == "" {
		appLogger.Error("JWT_SECRET must be set to issue tokens")
		os.Exit(1)
	}

	initJWTTokenizer()
	t, err := jwtTokenizer.Generate(map[string]interface{}{"sub": subject}, operatorTokenLifetime)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating token: %v", err))
		os.Exit(1)
	}
	fmt.Println(t)
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	if len(os.Args) > 1 && os.Args[1] == "token" {
		subject := "operator"
		if len(os.Args) > 2 {
			subject = os.Args[2]
		}
		printOperatorToken(subject)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	initRedis(ctx)
	cancel()
	if redisClient != nil {
		defer redisClient.Close()
	}

	initSolutionCache()
	initMapRepo()
	initMazeService()
	initMapController()
	initAuthMiddleware()
	initRouter()

	appLogger.Info(fmt.Sprintf("Server running on http://%s:%v", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
