package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/database/service"
	"github.com/bookvault/bookvault/internal/validation"
)

// BookHandler handles HTTP requests for the book catalog
type BookHandler struct {
	service service.BookService
	cfg     *config.Config
	logger  *slog.Logger
}

// NewBookHandler creates a new book handler
func NewBookHandler(service service.BookService, cfg *config.Config, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

type BookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// AddBook handles POST /api/v1/book
func (h *BookHandler) AddBook(c *gin.Context) {
	input, image, file, ok := h.bindBookInput(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	book, err := h.service.AddBook(c.Request.Context(), input, image)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Book added successfully",
		"data":    book,
	})
}

// GetBook handles GET /api/v1/book/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	book, err := h.service.GetBook(id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Book found successfully",
		"data":    book,
	})
}

// ListBooks handles GET /api/v1/books. An empty catalog is a 200 with an empty
// array, not an error.
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks()
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All books retrieved successfully",
		"data":    books,
	})
}

// UpdateBook handles PUT /api/v1/book/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	input, image, file, ok := h.bindBookInput(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, input, image)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Book updated successfully",
		"data":    book,
	})
}

// DeleteBook handles DELETE /api/v1/book/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Book deleted successfully",
	})
}

// bookID parses and validates the :id path parameter.
func (h *BookHandler) bookID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid book ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindBookInput reads the book fields from either a JSON body or a multipart
// form, validates them, and opens the optional cover image. The returned file
// must be closed by the caller when non-nil.
func (h *BookHandler) bindBookInput(c *gin.Context) (service.BookInput, *service.ImageFile, multipart.File, bool) {
	var input service.BookInput

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req BookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("⚠️ [BookHandler] Malformed book request", "error", err)
			RespondError(c, http.StatusBadRequest, "Title, author, and description are required")
			return input, nil, nil, false
		}
		input = service.BookInput{Title: req.Title, Author: req.Author, Description: req.Description}
	} else {
		input = service.BookInput{
			Title:       c.PostForm("title"),
			Author:      c.PostForm("author"),
			Description: c.PostForm("description"),
		}
	}

	if errs := validation.ValidateBookInput(input.Title, input.Author, input.Description); len(errs) > 0 {
		RespondValidationError(c, errs)
		return input, nil, nil, false
	}

	fileHeader, err := c.FormFile("bookImage")
	if err != nil {
		// No image attached; the book is created or updated without one.
		return input, nil, nil, true
	}

	if fileHeader.Size > h.cfg.MaxFileSize {
		RespondError(c, http.StatusBadRequest, "Image exceeds the maximum allowed size")
		return input, nil, nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("❌ [BookHandler] Failed to open uploaded file", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal Server Error")
		return input, nil, nil, false
	}

	image := &service.ImageFile{
		Name:        fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      file,
	}

	return input, image, file, true
}

// handleServiceError maps service errors to the common envelope
func (h *BookHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		RespondError(c, http.StatusNotFound, "Book not found")
	case errors.Is(err, service.ErrImageUpload):
		h.logger.Error("❌ [BookHandler] Image relay failure", "error", err)
		RespondError(c, http.StatusInternalServerError, "Image upload failed")
	default:
		h.logger.Error("❌ [BookHandler] Internal server error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
