package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"scenario-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Лимит на размер загружаемой книги.
const maxImportSize = 10 << 20 // 10 MiB

// TransferHandler - экспорт и импорт xlsx-книг.
type TransferHandler struct {
	service *service.TransferService
	logger  *zap.Logger
}

func NewTransferHandler(service *service.TransferService, logger *zap.Logger) *TransferHandler {
	return &TransferHandler{
		service: service,
		logger:  logger.Named("TransferHandler"),
	}
}

// Export - GET /api/transfer/export. Книга собирается в память и отдается
// attachment'ом; объем данных одного пользователя это позволяет.
func (h *TransferHandler) Export(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.service.Export(c.Request.Context(), userID, &buf); err != nil {
		workbookTransfersTotal.WithLabelValues("export", "error").Inc()
		handleServiceError(c, err)
		return
	}

	workbookTransfersTotal.WithLabelValues("export", "ok").Inc()
	filename := fmt.Sprintf("scenarios-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Import - POST /api/transfer/import, multipart с полем "file".
func (h *TransferHandler) Import(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errBadUpload("missing multipart field \"file\""))
		return
	}
	if fileHeader.Size > maxImportSize {
		c.AbortWithStatusJSON(http.StatusBadRequest, errBadUpload("file is too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errBadUpload("failed to read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.service.Import(c.Request.Context(), userID, file)
	if err != nil {
		workbookTransfersTotal.WithLabelValues("import", "error").Inc()
		handleServiceError(c, err)
		return
	}
	if !result.Success {
		workbookTransfersTotal.WithLabelValues("import", "rejected").Inc()
		c.JSON(http.StatusBadRequest, result)
		return
	}

	workbookTransfersTotal.WithLabelValues("import", "ok").Inc()
	c.JSON(http.StatusOK, result)
}
