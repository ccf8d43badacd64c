package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/database/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test_secret",
		TokenExpiration: 604800, // 7 days
		BcryptCost:      4,      // keep hashing fast in tests
	}
}

// ==================== MOCK USER REPOSITORY ====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// ==================== MOCK BOOK REPOSITORY ====================

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(book *models.Book) error {
	args := m.Called(book)
	if args.Error(0) == nil && book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockBookRepository) FindByID(id uuid.UUID) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) FindAll() ([]models.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Update(book *models.Book) error {
	return m.Called(book).Error(0)
}

func (m *MockBookRepository) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

// ==================== MOCK IMAGE UPLOADER ====================

type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) Upload(ctx context.Context, file *ImageFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}
