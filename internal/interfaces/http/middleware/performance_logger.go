package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

// slowRequestThreshold separa requisições lentas no log
const slowRequestThreshold = 500 * time.Millisecond

// Lista de rotas para monitorar performance
var monitoredRoutes = []string{
	"/companies",
	"/responses",
}

// PerformanceLogger é um middleware que mede o tempo de resposta das rotas críticas
func PerformanceLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Verificar se é uma rota que queremos monitorar
		path := c.Path()

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		// Se não for uma rota monitorada, apenas continua
		if !shouldMonitor {
			return c.Next()
		}

		// Registrar o tempo de início
		start := time.Now()

		// Processar a requisição
		err := c.Next()

		// Calcular duração
		duration := time.Since(start)

		fields := []interface{}{
			"method", c.Method(),
			"path", path,
			"status", c.Response().StatusCode(),
			"duration", duration,
			"query", c.Request().URI().QueryArgs().String(),
			"request_id", c.Locals("requestid"),
		}
		if duration > slowRequestThreshold {
			log.Warn("[PERFORMANCE] requisição lenta", fields...)
		} else {
			log.Debug("[PERFORMANCE]", fields...)
		}

		return err
	}
}
