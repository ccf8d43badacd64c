package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookvault/bookvault/internal/database/models"
)

// BookRepository defines the interface for book data operations
type BookRepository interface {
	Create(book *models.Book) error
	FindByID(id uuid.UUID) (*models.Book, error)
	FindAll() ([]models.Book, error)
	Update(book *models.Book) error
	Delete(id uuid.UUID) error
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository instance
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *models.Book) error {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	return r.db.Create(book).Error
}

func (r *bookRepository) FindByID(id uuid.UUID) (*models.Book, error) {
	var book models.Book
	err := r.db.Where("id = ?", id).First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindAll() ([]models.Book, error) {
	books := make([]models.Book, 0)
	if err := r.db.Order("created_at DESC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) Update(book *models.Book) error {
	return r.db.Save(book).Error
}

func (r *bookRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Book{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Repository errors
var (
	ErrBookNotFound = errors.New("book not found")
)
