package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/software/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// maxCSVUploadSize caps catalog uploads at 5 MiB.
const maxCSVUploadSize = 5 << 20

type SoftwareHandler struct {
	listSoftwareUC  usecases.ListSoftwareExecutor
	importCatalogUC usecases.ImportCatalogExecutor
	logger          logger.Interface
}

func NewSoftwareHandler(
	listSoftwareUC usecases.ListSoftwareExecutor,
	importCatalogUC usecases.ImportCatalogExecutor,
) *SoftwareHandler {
	return &SoftwareHandler{
		listSoftwareUC:  listSoftwareUC,
		importCatalogUC: importCatalogUC,
		logger:          logger.NewLogger(),
	}
}

func (h *SoftwareHandler) ListSoftware(c *gin.Context) {
	result, err := h.listSoftwareUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *SoftwareHandler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("CSV file is required", err.Error()))
		return
	}
	if fileHeader.Size > maxCSVUploadSize {
		utils.ErrorResponseWithError(c, errors.NewValidationError("CSV file exceeds the maximum upload size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded CSV", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.importCatalogUC.Execute(c.Request.Context(), usecases.ImportCatalogCommand{Reader: file})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Catalog import finished", result)
}

func (h *SoftwareHandler) SampleCSV(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="software-catalog-sample.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(usecases.SampleCSV))
}
