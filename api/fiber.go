package api

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sunthewhat/easy-cert-claim/api/handler"
	"github.com/sunthewhat/easy-cert-claim/api/middleware"
	"github.com/sunthewhat/easy-cert-claim/api/routes"
	"github.com/sunthewhat/easy-cert-claim/common"
)

// maxBodySize leaves room for a template upload plus its form fields.
const maxBodySize = 25 << 20

func InitFiber() {
	cfg := fiber.Config{
		AppName:       "easy cert claim api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
		BodyLimit:     maxBodySize,
	}
	app := fiber.New(cfg)

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(middleware.Recover())
	app.Use(middleware.Cors(common.Config.Cors))

	routes.Init(app)

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
