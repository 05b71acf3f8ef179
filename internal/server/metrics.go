package server

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// registerMetrics exposes request metrics at /metrics. Each app gets its own
// registry so several servers can live in one process.
func registerMetrics(app *fiber.App, serviceName string) {
	prom := fiberprometheus.NewWithRegistry(prometheus.NewRegistry(), serviceName, "notes", "http", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
}
