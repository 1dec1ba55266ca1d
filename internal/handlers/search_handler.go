package handlers

import (
	"Explorer/internal/mapper"
	"Explorer/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service services.SearchService
}

func NewSearchHandler(service services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// GlobalSearch answers an absent q with an empty result; a blank but present
// q is rejected by the service.
func (h *SearchHandler) GlobalSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return respondData(c, http.StatusOK, mapper.ToContentsGetDTO(nil))
	}

	results, err := h.service.GlobalSearch(c.UserContext(), query)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToContentsGetDTO(results))
}
