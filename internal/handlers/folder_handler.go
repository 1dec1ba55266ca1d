package handlers

import (
	"Explorer/internal/mapper"
	"Explorer/internal/services"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
)

type FolderHandler struct {
	service       services.FolderService
	searchService services.SearchService
}

func NewFolderHandler(service services.FolderService, searchService services.SearchService) *FolderHandler {
	return &FolderHandler{service: service, searchService: searchService}
}

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

func (r createFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.ParentID, validation.NilOrNotEmpty),
	)
}

type renameRequest struct {
	Name string `json:"name"`
}

func (r renameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

type moveFolderRequest struct {
	ParentID *string `json:"parentId"`
}

func (r moveFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ParentID, validation.NilOrNotEmpty),
	)
}

type copyFolderRequest struct {
	TargetParentID *string `json:"targetParentId"`
}

func (r copyFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TargetParentID, validation.NilOrNotEmpty),
	)
}

// parseBody reads an optional JSON body into req and validates it.
func parseBody(c *fiber.Ctx, req validation.Validatable) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return err
		}
	}
	return req.Validate()
}

func (h *FolderHandler) GetRootFolders(c *fiber.Ctx) error {
	folders, err := h.service.GetRootFolders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToFolderGetDTOs(folders))
}

func (h *FolderHandler) CreateFolder(c *fiber.Ctx) error {
	var req createFolderRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	folder, err := h.service.CreateFolder(c.UserContext(), req.Name, req.ParentID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, mapper.ToFolderGetDTO(folder))
}

func (h *FolderHandler) GetFolder(c *fiber.Ctx) error {
	folder, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToFolderGetDTO(folder))
}

func (h *FolderHandler) GetChildren(c *fiber.Ctx) error {
	options := services.ChildrenOptions{
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		FilterType: c.Query("filterType"),
	}

	children, err := h.service.GetChildren(c.UserContext(), c.Params("id"), options)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToContentsGetDTO(children))
}

// SearchFolder matches the immediate children of the folder. A missing q
// yields an empty result rather than an error.
func (h *FolderHandler) SearchFolder(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return respondData(c, http.StatusOK, mapper.ToContentsGetDTO(nil))
	}

	results, err := h.searchService.Search(c.UserContext(), c.Params("id"), query)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToContentsGetDTO(results))
}

func (h *FolderHandler) RenameFolder(c *fiber.Ctx) error {
	var req renameRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	folder, err := h.service.RenameFolder(c.UserContext(), c.Params("id"), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToFolderGetDTO(folder))
}

func (h *FolderHandler) MoveFolder(c *fiber.Ctx) error {
	var req moveFolderRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	folder, err := h.service.MoveFolder(c.UserContext(), c.Params("id"), req.ParentID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToFolderGetDTO(folder))
}

func (h *FolderHandler) CopyFolder(c *fiber.Ctx) error {
	var req copyFolderRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	folder, err := h.service.CopyFolder(c.UserContext(), c.Params("id"), req.TargetParentID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, mapper.ToFolderGetDTO(folder))
}

func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	if err := h.service.DeleteFolder(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
