package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/admissions/internal/models"
	"github.com/yoockh/admissions/internal/services"
	"github.com/yoockh/admissions/internal/utils"
)

const maxUploadSize = 10 << 20

// allowedUploads maps sniffed content types to stored extensions.
var allowedUploads = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

type StorageHandler struct {
	urls    services.URLService
	uploads services.UploadService
}

func NewStorageHandler(urls services.URLService, uploads services.UploadService) *StorageHandler {
	return &StorageHandler{urls: urls, uploads: uploads}
}

type ResolveURLResponse struct {
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
	URL    string `json:"url"`
}

func (h *StorageHandler) ResolveURL(c *gin.Context) {
	bucket := c.Query("bucket")
	path := c.Query("path")

	var expiresIn time.Duration
	if s := c.Query("expires_in"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(c, utils.E(utils.CodeInvalidArgument, "StorageHandler.ResolveURL", "expires_in must be a non-negative number of seconds", err))
			return
		}
		expiresIn = time.Duration(n) * time.Second
	}

	u, err := h.urls.Resolve(c.Request.Context(), bucket, path, expiresIn)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusOK, ResolveURLResponse{Bucket: bucket, Path: path, URL: u})
}

func (h *StorageHandler) Upload(c *gin.Context) {
	const op = "StorageHandler.Upload"

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return
	}
	if fh.Size <= 0 || fh.Size > maxUploadSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file must be between 1 byte and 10MB", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	head = head[:n]

	ct := http.DetectContentType(head)
	ext, ok := allowedUploads[ct]
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unsupported content type "+ct+" (pdf, jpeg or png)", nil))
		return
	}

	doc, err := h.uploads.Upload(c.Request.Context(),
		c.PostForm("application_id"),
		models.FileType(c.PostForm("file_type")),
		fh.Filename, fh.Size, ct, ext,
		io.MultiReader(bytes.NewReader(head), file),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusCreated, doc)
}
