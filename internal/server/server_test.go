package server

import (
	"Explorer/cmd"
	"Explorer/database"
	"Explorer/internal/config"
	"Explorer/internal/handlers"
	"Explorer/internal/repository"
	"Explorer/internal/services"
	"Explorer/internal/storage"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(database.SqliteDialector(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := &config.Configuration{
		Storage: config.StorageConfig{Driver: "disk", Path: t.TempDir(), MaxUploadSize: config.DefaultMaxUploadSize},
		Server: config.ServerConfig{
			Concurrency:   256,
			RequestConfig: config.RequestConfig{SizeLimit: 4},
			CleanConfig:   config.CleanConfig{Schedule: "@every 1h"},
		},
	}
	store, err := storage.NewContentStore(cfg)
	require.NoError(t, err)

	logService := services.NewDiscardLogService()
	folderRepository := repository.NewFolderRepository(db)
	fileRepository := repository.NewFileRepository(db)
	folderService := services.NewFolderService(folderRepository, store, logService)
	searchService := services.NewSearchService(folderRepository, fileRepository)
	fileService := services.NewFileService(fileRepository, folderRepository, store, cfg, logService)
	janitor := services.NewJanitorService(fileRepository, store, logService, cfg)

	explorer := cmd.NewServer(
		cfg, db, folderRepository, fileRepository,
		folderService, handlers.NewFolderHandler(folderService, searchService),
		searchService, handlers.NewSearchHandler(searchService),
		fileService, handlers.NewFileHandler(fileService),
		logService, janitor,
	)
	return NewApp(explorer)
}

func call(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func dataOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return data
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	status, body := call(t, app, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestFolderLifecycle(t *testing.T) {
	app := setupApp(t)

	status, body := call(t, app, http.MethodPost, "/api/v1/folders", map[string]interface{}{"name": "  Projects  "})
	require.Equal(t, http.StatusCreated, status)
	root := dataOf(t, body)
	assert.Equal(t, "Projects", root["name"])
	rootID := root["id"].(string)

	status, body = call(t, app, http.MethodPost, "/api/v1/folders", map[string]interface{}{"name": "Alpha", "parentId": rootID})
	require.Equal(t, http.StatusCreated, status)
	childID := dataOf(t, body)["id"].(string)

	status, body = call(t, app, http.MethodGet, "/api/v1/folders/root", nil)
	require.Equal(t, http.StatusOK, status)
	roots := body["data"].([]interface{})
	require.Len(t, roots, 1)
	assert.Equal(t, true, roots[0].(map[string]interface{})["hasChildren"])

	status, _ = call(t, app, http.MethodPost, "/api/v1/folders/"+rootID+"/move", map[string]interface{}{"parentId": childID})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, app, http.MethodPost, "/api/v1/folders/"+rootID+"/copy", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Projects - Copy", dataOf(t, body)["name"])

	status, body = call(t, app, http.MethodGet, "/api/v1/search?q=alpha", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, dataOf(t, body)["folders"], 2)

	status, body = call(t, app, http.MethodPatch, "/api/v1/folders/"+childID, map[string]interface{}{"name": "Beta"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Beta", dataOf(t, body)["name"])

	status, _ = call(t, app, http.MethodDelete, "/api/v1/folders/"+rootID, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, body = call(t, app, http.MethodGet, "/api/v1/folders/"+childID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, body["error"])
}

func TestChildrenQueryValidation(t *testing.T) {
	app := setupApp(t)

	_, body := call(t, app, http.MethodPost, "/api/v1/folders", map[string]interface{}{"name": "Root"})
	rootID := dataOf(t, body)["id"].(string)

	status, _ := call(t, app, http.MethodGet, "/api/v1/folders/"+rootID+"/children?sortBy=size", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, app, http.MethodGet, "/api/v1/folders/"+rootID+"/children?sortBy=type&sortOrder=desc", nil)
	require.Equal(t, http.StatusOK, status)
	data := dataOf(t, body)
	assert.NotNil(t, data["folders"])
	assert.NotNil(t, data["files"])
}

func TestFileUploadAndDownload(t *testing.T) {
	app := setupApp(t)

	_, body := call(t, app, http.MethodPost, "/api/v1/folders", map[string]interface{}{"name": "Docs"})
	folderID := dataOf(t, body)["id"].(string)

	payload := &bytes.Buffer{}
	writer := multipart.NewWriter(payload)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello explorer"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("folderId", folderID))
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", payload)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	status, body := send(t, app, req)
	require.Equal(t, http.StatusCreated, status)
	file := dataOf(t, body)
	assert.Equal(t, "notes", file["name"])
	assert.Equal(t, "txt", file["extension"])
	assert.Equal(t, "14", file["size"])
	fileID := file["id"].(string)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/files/"+fileID+"/download", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello explorer", string(content))

	status, body = call(t, app, http.MethodPost, "/api/v1/files/"+fileID+"/copy", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "notes - Copy", dataOf(t, body)["name"])

	status, body = call(t, app, http.MethodGet, "/api/v1/folders/"+folderID+"/search?q=COPY", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, dataOf(t, body)["files"], 1)

	status, _ = call(t, app, http.MethodDelete, "/api/v1/files/"+fileID, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, app, http.MethodGet, "/api/v1/files/"+fileID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestJanitorClean(t *testing.T) {
	app := setupApp(t)

	status, body := call(t, app, http.MethodPost, "/api/v1/janitor/clean", nil)

	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "started", dataOf(t, body)["status"])
}
