package controllers

import (
	"github.com/Xebarter/Manziz/pkg/resp"
	"github.com/Xebarter/Manziz/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct {
	Uploader storage.Uploader
}

func NewUploadController(u storage.Uploader) *UploadController {
	return &UploadController{Uploader: u}
}

// POST /admin/uploads — multipart form, field "file". Menu images only.
func (ctl *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	url, err := ctl.Uploader.Upload(c.Request.Context(), uuid.NewString(), contentType, fh.Size, f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"url": url})
}

type deleteUploadReq struct {
	URL string `json:"url" binding:"required"`
}

// DELETE /admin/uploads
func (ctl *UploadController) Delete(c *gin.Context) {
	var req deleteUploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Uploader.Delete(c.Request.Context(), req.URL); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
