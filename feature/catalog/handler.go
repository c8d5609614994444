package catalog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shelfd/core/logger"
	"shelfd/feature/catalog/models"
	"shelfd/feature/catalog/remote"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/books")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the catalog contents in store order.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// HandleGet returns a single book by identity.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid id")
	}

	book, err := h.service.Get(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(book)
}

// HandleCreate inserts a new book optimistically. The response carries the
// committed record with its server-assigned identity.
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var payload models.Payload
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}

	book, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

// HandleUpdate applies a partial update optimistically.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid id")
	}

	var patch models.Patch
	if err := c.BodyParser(&patch); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if patch.IsZero() {
		return errorJSON(c, fiber.StatusBadRequest, "empty patch")
	}

	book, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(book)
}

// HandleDelete removes a book optimistically.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail maps domain errors onto HTTP statuses. Network failures become 502:
// local state has already been rolled back by the time they surface.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	var vErr *ValidationError
	var netErr *remote.NetworkError
	switch {
	case errors.As(err, &vErr):
		return errorJSON(c, fiber.StatusBadRequest, vErr.Msg)
	case errors.Is(err, ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, ErrNotFound.Error())
	case errors.As(err, &netErr):
		l.Warn("remote resource failure", zap.Error(err))
		return errorJSON(c, fiber.StatusBadGateway, "remote resource unavailable, change was rolled back")
	default:
		l.Error("catalog operation failed", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
