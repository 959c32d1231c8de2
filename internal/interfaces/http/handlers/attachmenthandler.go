package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/attachment/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AttachmentHandler struct {
	requestUploadUC      usecases.RequestUploadExecutor
	registerAttachmentUC usecases.RegisterAttachmentExecutor
	listAttachmentsUC    usecases.ListAttachmentsExecutor
	deleteAttachmentUC   usecases.DeleteAttachmentExecutor
	downloadObjectUC     usecases.DownloadObjectExecutor
	logger               logger.Interface
}

func NewAttachmentHandler(
	requestUploadUC usecases.RequestUploadExecutor,
	registerAttachmentUC usecases.RegisterAttachmentExecutor,
	listAttachmentsUC usecases.ListAttachmentsExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
	downloadObjectUC usecases.DownloadObjectExecutor,
) *AttachmentHandler {
	return &AttachmentHandler{
		requestUploadUC:      requestUploadUC,
		registerAttachmentUC: registerAttachmentUC,
		listAttachmentsUC:    listAttachmentsUC,
		deleteAttachmentUC:   deleteAttachmentUC,
		downloadObjectUC:     downloadObjectUC,
		logger:               logger.NewLogger(),
	}
}

type RegisterAttachmentRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	FileSize    int64  `json:"fileSize"`
	ContentType string `json:"contentType"`
	ObjectPath  string `json:"objectPath" binding:"required"`
}

func (h *AttachmentHandler) RequestUpload(c *gin.Context) {
	result, err := h.requestUploadUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *AttachmentHandler) RegisterAttachment(c *gin.Context) {
	identity, ok := authorization.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RegisterAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for attachment registration", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	result, err := h.registerAttachmentUC.Execute(c.Request.Context(), usecases.RegisterAttachmentCommand{
		TicketID:    ticketID,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
		ObjectPath:  req.ObjectPath,
		Identity:    identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment registered successfully")
}

func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	identity, ok := authorization.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAttachmentsUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		TicketID: ticketID,
		Identity: identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	identity, ok := authorization.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := utils.ParseUintParam(c, "attachmentId", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteAttachmentUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		TicketID:     ticketID,
		AttachmentID: attachmentID,
		Identity:     identity,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// DownloadObject streams a stored object back to an authorized caller with
// the original file name.
func (h *AttachmentHandler) DownloadObject(c *gin.Context) {
	identity, ok := authorization.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	objectPath := c.Param("path")
	if len(objectPath) > 0 && objectPath[0] == '/' {
		objectPath = objectPath[1:]
	}

	result, err := h.downloadObjectUC.Execute(c.Request.Context(), usecases.DownloadObjectQuery{
		ObjectPath: objectPath,
		Identity:   identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Body.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%s", strconv.Quote(result.FileName)),
	}

	c.DataFromReader(http.StatusOK, result.Size, result.ContentType, result.Body, extraHeaders)
}
