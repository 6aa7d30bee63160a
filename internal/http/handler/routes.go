package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"formapi/internal/model"
	"formapi/internal/service"
	"formapi/internal/validation"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, client *mongo.Client, svc service.SubmissionService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks store connectivity only
	app.Get("/health", HealthCheck(client))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/", Root())
	api.Post("/submissions", CreateSubmission(svc))
	api.Get("/submissions", ListSubmissions(svc))
	api.Get("/submissions/export", ExportSubmissions(svc))
	api.Delete("/submissions/:id", DeleteSubmission(svc))
}

// Root reports that the API is up.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Form API is running"})
	}
}

// HealthCheck pings the record store with a short timeout.
func HealthCheck(client *mongo.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is running.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// CreateSubmission accepts a submission payload, validates it, and
// returns the stored record including its generated id and timestamp.
func CreateSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.SubmissionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		sub, err := svc.Create(c.UserContext(), in)
		if err != nil {
			var verr *validation.ValidationError
			if errors.As(err, &verr) {
				msg := fmt.Sprintf("%s %s", verr.Field, verr.Reason)
				return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", msg)
			}
			var serr *service.StorageError
			if errors.As(err, &serr) {
				return writeError(c, fiber.StatusInternalServerError, "STORAGE_ERROR", "could not persist submission")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusOK).JSON(sub)
	}
}

// ListSubmissions returns all stored submissions, capped at 1000.
func ListSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "STORAGE_ERROR", "could not read submissions")
		}
		return c.JSON(items)
	}
}

// ExportSubmissions streams the current submissions as an xlsx download.
func ExportSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "EXPORT_ERROR", "could not generate export")
		}
		c.Set(fiber.HeaderContentType, res.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", res.Filename))
		return c.Send(res.Data)
	}
}

// deleteResponse is the success-shaped outcome of a delete request.
// Not-found is reported here, not as an HTTP error.
type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteSubmission removes a submission by id.
func DeleteSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		deleted, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "STORAGE_ERROR", "could not delete submission")
		}

		if !deleted {
			return c.JSON(deleteResponse{Success: false, Message: "Submission not found"})
		}
		return c.JSON(deleteResponse{Success: true, Message: "Submission deleted"})
	}
}
