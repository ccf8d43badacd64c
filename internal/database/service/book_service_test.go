package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bookvault/bookvault/internal/database/models"
	"github.com/bookvault/bookvault/internal/database/repository"
)

func testImage() *ImageFile {
	return &ImageFile{
		Name:        "cover.png",
		Size:        4,
		ContentType: "image/png",
		Reader:      strings.NewReader("fake"),
	}
}

func TestBookService_AddBook(t *testing.T) {
	input := BookInput{Title: "Dune", Author: "Frank Herbert", Description: "Sand."}

	t.Run("without image", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		uploader := new(MockImageUploader)
		bookRepo.On("Create", mock.AnythingOfType("*models.Book")).Return(nil)

		svc := NewBookService(bookRepo, uploader, testLogger())
		book, err := svc.AddBook(context.Background(), input, nil)

		require.NoError(t, err)
		assert.Equal(t, "Dune", book.Title)
		assert.Nil(t, book.BookImage)
		uploader.AssertNotCalled(t, "Upload")
		bookRepo.AssertExpectations(t)
	})

	t.Run("with image", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		uploader := new(MockImageUploader)
		uploader.On("Upload", mock.Anything, mock.AnythingOfType("*service.ImageFile")).
			Return("https://cdn.example.com/book-images/abc.png", nil)
		bookRepo.On("Create", mock.AnythingOfType("*models.Book")).Return(nil)

		svc := NewBookService(bookRepo, uploader, testLogger())
		book, err := svc.AddBook(context.Background(), input, testImage())

		require.NoError(t, err)
		require.NotNil(t, book.BookImage)
		assert.Equal(t, "https://cdn.example.com/book-images/abc.png", *book.BookImage)
		uploader.AssertExpectations(t)
		bookRepo.AssertExpectations(t)
	})

	t.Run("upload failure persists nothing", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		uploader := new(MockImageUploader)
		uploader.On("Upload", mock.Anything, mock.AnythingOfType("*service.ImageFile")).
			Return("", errors.New("relay unreachable"))

		svc := NewBookService(bookRepo, uploader, testLogger())
		book, err := svc.AddBook(context.Background(), input, testImage())

		assert.ErrorIs(t, err, ErrImageUpload)
		assert.Nil(t, book)
		bookRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestBookService_GetBook(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("FindByID", id).Return(&models.Book{ID: id, Title: "Dune"}, nil)

		svc := NewBookService(bookRepo, new(MockImageUploader), testLogger())
		book, err := svc.GetBook(id)

		require.NoError(t, err)
		assert.Equal(t, id, book.ID)
	})

	t.Run("not found", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("FindByID", id).Return(nil, repository.ErrBookNotFound)

		svc := NewBookService(bookRepo, new(MockImageUploader), testLogger())
		_, err := svc.GetBook(id)

		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestBookService_ListBooks_EmptyCatalog(t *testing.T) {
	bookRepo := new(MockBookRepository)
	bookRepo.On("FindAll").Return([]models.Book{}, nil)

	svc := NewBookService(bookRepo, new(MockImageUploader), testLogger())
	books, err := svc.ListBooks()

	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBookService_UpdateBook(t *testing.T) {
	id := uuid.New()
	input := BookInput{Title: "Dune Messiah", Author: "Frank Herbert", Description: "More sand."}
	existingURL := "https://cdn.example.com/book-images/old.png"

	t.Run("without new image keeps the stored one", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		uploader := new(MockImageUploader)
		bookRepo.On("FindByID", id).Return(&models.Book{ID: id, Title: "Dune", BookImage: &existingURL}, nil)
		bookRepo.On("Update", mock.AnythingOfType("*models.Book")).Return(nil)

		svc := NewBookService(bookRepo, uploader, testLogger())
		book, err := svc.UpdateBook(context.Background(), id, input, nil)

		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", book.Title)
		require.NotNil(t, book.BookImage)
		assert.Equal(t, existingURL, *book.BookImage)
		uploader.AssertNotCalled(t, "Upload")
	})

	t.Run("with new image replaces the stored one", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		uploader := new(MockImageUploader)
		bookRepo.On("FindByID", id).Return(&models.Book{ID: id, Title: "Dune", BookImage: &existingURL}, nil)
		uploader.On("Upload", mock.Anything, mock.AnythingOfType("*service.ImageFile")).
			Return("https://cdn.example.com/book-images/new.png", nil)
		bookRepo.On("Update", mock.AnythingOfType("*models.Book")).Return(nil)

		svc := NewBookService(bookRepo, uploader, testLogger())
		book, err := svc.UpdateBook(context.Background(), id, input, testImage())

		require.NoError(t, err)
		require.NotNil(t, book.BookImage)
		assert.Equal(t, "https://cdn.example.com/book-images/new.png", *book.BookImage)
	})

	t.Run("missing record", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("FindByID", id).Return(nil, repository.ErrBookNotFound)

		svc := NewBookService(bookRepo, new(MockImageUploader), testLogger())
		_, err := svc.UpdateBook(context.Background(), id, input, nil)

		assert.ErrorIs(t, err, ErrBookNotFound)
		bookRepo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("Delete", id).Return(nil)

		svc := NewBookService(bookRepo, new(MockImageUploader), testLogger())
		assert.NoError(t, svc.DeleteBook(id))
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		bookRepo := new(MockBookRepository)
		bookRepo.On("Delete", id).Return(repository.ErrBookNotFound)

		svc := NewBookService(bookRepo, new(MockImageUploader), testLogger())
		assert.ErrorIs(t, svc.DeleteBook(id), ErrBookNotFound)
	})
}
