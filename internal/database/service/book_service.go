package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookvault/bookvault/internal/database/models"
	"github.com/bookvault/bookvault/internal/database/repository"
)

// BookInput carries the writable fields of a book.
type BookInput struct {
	Title       string
	Author      string
	Description string
}

// ImageFile is an uploaded cover image ready to be relayed to object storage.
type ImageFile struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// ImageUploader relays an image to external storage and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, file *ImageFile) (string, error)
}

// BookService defines the interface for book catalog business logic
type BookService interface {
	AddBook(ctx context.Context, input BookInput, image *ImageFile) (*models.Book, error)
	GetBook(id uuid.UUID) (*models.Book, error)
	ListBooks() ([]models.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, input BookInput, image *ImageFile) (*models.Book, error)
	DeleteBook(id uuid.UUID) error
}

type bookService struct {
	bookRepo repository.BookRepository
	uploader ImageUploader
	logger   *slog.Logger
}

// NewBookService creates a new book service instance
func NewBookService(bookRepo repository.BookRepository, uploader ImageUploader, logger *slog.Logger) BookService {
	return &bookService{
		bookRepo: bookRepo,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *bookService) AddBook(ctx context.Context, input BookInput, image *ImageFile) (*models.Book, error) {
	book := &models.Book{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}

	// Upload before persisting so a relay failure never leaves a book with a
	// broken image reference.
	if image != nil {
		url, err := s.uploader.Upload(ctx, image)
		if err != nil {
			s.logger.Error("❌ [BookService] Image upload failed", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		book.BookImage = &url
	}

	if err := s.bookRepo.Create(book); err != nil {
		s.logger.Error("❌ [BookService] Failed to create book", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [BookService] Book added", "book_id", book.ID, "title", book.Title)
	return book, nil
}

func (s *bookService) GetBook(id uuid.UUID) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		s.logger.Error("❌ [BookService] Failed to fetch book", "book_id", id, "error", err)
		return nil, err
	}
	return book, nil
}

func (s *bookService) ListBooks() ([]models.Book, error) {
	books, err := s.bookRepo.FindAll()
	if err != nil {
		s.logger.Error("❌ [BookService] Failed to list books", "error", err)
		return nil, err
	}
	// Zero books is a valid catalog state and maps to an empty list, not an error.
	return books, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id uuid.UUID, input BookInput, image *ImageFile) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		s.logger.Error("❌ [BookService] Failed to fetch book for update", "book_id", id, "error", err)
		return nil, err
	}

	book.Title = input.Title
	book.Author = input.Author
	book.Description = input.Description

	// A new image replaces the stored URL; otherwise the old one is kept as is.
	if image != nil {
		url, err := s.uploader.Upload(ctx, image)
		if err != nil {
			s.logger.Error("❌ [BookService] Image upload failed", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		book.BookImage = &url
	}

	if err := s.bookRepo.Update(book); err != nil {
		s.logger.Error("❌ [BookService] Failed to update book", "book_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [BookService] Book updated", "book_id", book.ID)
	return book, nil
}

func (s *bookService) DeleteBook(id uuid.UUID) error {
	if err := s.bookRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return ErrBookNotFound
		}
		s.logger.Error("❌ [BookService] Failed to delete book", "book_id", id, "error", err)
		return err
	}

	s.logger.Info("✅ [BookService] Book deleted", "book_id", id)
	return nil
}

// Service errors
var (
	ErrBookNotFound = errors.New("book not found")
	ErrImageUpload  = errors.New("image upload failed")
)
