package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-droid/api"
	exploreapi "github.com/beka-birhanu/vinom-droid/api/explore"
	api_i "github.com/beka-birhanu/vinom-droid/api/i"
	"github.com/beka-birhanu/vinom-droid/api/identity"
	"github.com/beka-birhanu/vinom-droid/config"
	"github.com/beka-birhanu/vinom-droid/infrastruture/token"
	logger "github.com/beka-birhanu/vinom-droid/log"
	"github.com/beka-birhanu/vinom-droid/service"
	"github.com/beka-birhanu/vinom-droid/service/i"
	"github.com/gin-gonic/gin"
)

// Dependencies of the HTTP server.
var (
	envs              config.Config
	appLogger         *logger.Logger
	httpLogger        *logger.Logger
	jwtTokenizer      i.Tokenizer
	explorer          i.Explorer
	authController    api_i.Controller
	exploreController api_i.Controller
	router            *api.Router
)

func newLogger(prefix, color string) (*logger.Logger, error) {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("creating %s logger: %w", prefix, err)
	}
	if err := l.SetLevel(envs.LogLevel); err != nil {
		return nil, err
	}
	return l, nil
}

func initLoggers() error {
	var err error
	if appLogger, err = newLogger("APP", config.ColorGreen); err != nil {
		return err
	}
	if httpLogger, err = newLogger("HTTP", config.ColorBlue); err != nil {
		return err
	}
	return nil
}

func initJWTTokenizer() error {
	var err error
	jwtTokenizer, err = token.NewJwtService(config.MustGetEnv("JWT_SECRET"), envs.JWTIssuer)
	if err != nil {
		return fmt.Errorf("creating jwt tokenizer: %w", err)
	}
	appLogger.Info("JWT Tokenizer initialized")
	return nil
}

func initExplorer() error {
	serviceLogger, err := newLogger("EXPLORER", config.ColorCyan)
	if err != nil {
		return err
	}
	droidLogger, err := newLogger("DROID", config.ColorYellow)
	if err != nil {
		return err
	}

	explorer, err = service.NewExplorer(&service.ExplorerConfig{
		Logger:       serviceLogger,
		DroidLogger:  droidLogger,
		MaxDimension: envs.MaxMazeDimension,
		KeepReports:  envs.KeepReports,
	})
	if err != nil {
		return fmt.Errorf("creating explorer: %w", err)
	}
	appLogger.Info("Explorer initialized")
	return nil
}

func initControllers() error {
	authController = identity.NewIdentityServer(
		jwtTokenizer,
		config.MustGetEnv("API_KEY"),
		time.Duration(envs.JWTTTLMinutes)*time.Minute,
	)
	appLogger.Info("Auth controller initialized")

	var err error
	exploreController, err = exploreapi.NewExploreController(explorer)
	if err != nil {
		return fmt.Errorf("creating explore controller: %w", err)
	}
	appLogger.Info("Explore controller initialized")
	return nil
}

func initRouter() {
	gin.SetMode(envs.GinMode)
	gin.DefaultWriter = httpLogger.Writer()

	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, exploreController},
		AuthorizationMiddleware: identity.Authoriz(jwtTokenizer),
		Middlewares:             []gin.HandlerFunc{api.RequestLogger(httpLogger)},
	})
	appLogger.Info("Router initialized")
}

// serveCommand wires the HTTP server from the environment and blocks serving it.
func serveCommand() error {
	var err error
	if envs, err = config.Load(); err != nil {
		return err
	}

	if err := initLoggers(); err != nil {
		return err
	}
	if err := initJWTTokenizer(); err != nil {
		return err
	}
	if err := initExplorer(); err != nil {
		return err
	}
	if err := initControllers(); err != nil {
		return err
	}
	initRouter()

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", envs.HostIP, envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		return err
	}
	return nil
}
