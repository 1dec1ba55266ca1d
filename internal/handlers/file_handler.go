package handlers

import (
	"Explorer/internal/mapper"
	"Explorer/internal/services"
	"mime"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	service services.FileService
}

func NewFileHandler(service services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

type copyFileRequest struct {
	TargetFolderID *string `json:"targetFolderId"`
}

func (r copyFileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TargetFolderID, validation.NilOrNotEmpty),
	)
}

func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Invalid file")
	}
	folderID := c.FormValue("folderId")

	content, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer content.Close()

	file, err := h.service.UploadFile(c.UserContext(), services.UploadedFile{
		Name:     fileHeader.Filename,
		MimeType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:     fileHeader.Size,
		Content:  content,
	}, folderID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, mapper.ToFileGetDTO(file))
}

func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	file, err := h.service.GetFile(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToFileGetDTO(file))
}

func (h *FileHandler) DownloadFile(c *fiber.Ctx) error {
	file, content, err := h.service.OpenFile(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	mimeType := fiber.MIMEOctetStream
	if file.MimeType != nil {
		mimeType = *file.MimeType
	}
	fileName := file.Name
	if file.Extension != "" {
		fileName += "." + file.Extension
	}

	c.Set(fiber.HeaderContentType, mimeType)
	c.Set(fiber.HeaderContentDisposition, contentDisposition(fileName))
	// fasthttp closes the stream once the body is sent.
	return c.SendStream(content)
}

// contentDisposition quotes plain names and switches to the RFC 2231
// filename* form for anything outside ASCII.
func contentDisposition(fileName string) string {
	if header := mime.FormatMediaType("attachment", map[string]string{"filename": fileName}); header != "" {
		return header
	}
	return "attachment"
}

func (h *FileHandler) RenameFile(c *fiber.Ctx) error {
	var req renameRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	file, err := h.service.RenameFile(c.UserContext(), c.Params("id"), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, mapper.ToFileGetDTO(file))
}

func (h *FileHandler) CopyFile(c *fiber.Ctx) error {
	var req copyFileRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	file, err := h.service.CopyFile(c.UserContext(), c.Params("id"), req.TargetFolderID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, mapper.ToFileGetDTO(file))
}

func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	if err := h.service.DeleteFile(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
