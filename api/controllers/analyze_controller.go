package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/moritani/scribe-go/api/models"
	"github.com/moritani/scribe-go/tool"
	"github.com/moritani/scribe-go/types"
)

// imagesFieldName is the multipart field carrying the uploaded files.
const imagesFieldName = "images"

// Transcriber turns one image into text. Implemented by vision.Client.
type Transcriber interface {
	TranscribeImage(ctx context.Context, mimeType string, data []byte) (string, error)
	Model() string
}

type AnalyzeController struct {
	client         Transcriber
	maxUploadBytes int64
}

func NewAnalyzeController(client Transcriber, cfg *types.AppConfig) *AnalyzeController {
	return &AnalyzeController{
		client:         client,
		maxUploadBytes: cfg.MaxUploadBytes,
	}
}

// HandleAnalyze accepts a batch of images and fans one transcription request
// out per image. All calls must finish before the response is written; a
// failing sibling does not cancel the others, but any failure turns the whole
// batch into a 500 with no partial results.
func (ctrl *AnalyzeController) HandleAnalyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctrl.maxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		tool.DefaultLogger.Errorf("Failed to parse analyze upload: %v", err)
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Failed to parse upload form"))
		return
	}

	files := form.File[imagesFieldName]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("No images provided"))
		return
	}

	imageFiles := files[:0:0]
	for _, header := range files {
		if strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			imageFiles = append(imageFiles, header)
		}
	}
	if len(imageFiles) == 0 {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("No valid image files found"))
		return
	}

	batchID := uuid.New().String()
	tool.DefaultLogger.Infof("[Analyze] Batch %s: transcribing %d image(s)", batchID, len(imageFiles))

	ctx := c.Request.Context()
	results := make([]types.AnalyzeResult, len(imageFiles))

	// Plain errgroup, deliberately not WithContext: every call runs to
	// completion and the first error is reported for the whole batch.
	var g errgroup.Group
	for i, header := range imageFiles {
		g.Go(func() error {
			file, err := header.Open()
			if err != nil {
				return fmt.Errorf("open %s: %w", header.Filename, err)
			}
			defer func() {
				if err := file.Close(); err != nil {
					tool.DefaultLogger.Errorf("Failed to close uploaded file: %v", err)
				}
			}()

			data, err := io.ReadAll(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", header.Filename, err)
			}

			key := models.TranscriptionCacheKey(ctrl.client.Model(), data)
			if text, ok := models.LookupTranscription(key); ok {
				tool.DefaultLogger.Debugf("[Analyze] Batch %s: cache hit for %s", batchID, header.Filename)
				results[i] = types.AnalyzeResult{Name: header.Filename, Description: text}
				return nil
			}

			text, err := ctrl.client.TranscribeImage(ctx, header.Header.Get("Content-Type"), data)
			if err != nil {
				return err
			}
			models.CacheTranscription(key, text)

			results[i] = types.AnalyzeResult{Name: header.Filename, Description: text}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		tool.DefaultLogger.Errorf("[Analyze] Batch %s failed: %v", batchID, err)
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Error processing the request: "+err.Error()))
		return
	}

	tool.DefaultLogger.Infof("[Analyze] Batch %s completed", batchID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Analysis completed successfully",
		"results": results,
	})
}
