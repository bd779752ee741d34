package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// CategoryRepositoryImpl implements domain.CategoryRepository using GORM
type CategoryRepositoryImpl struct {
	db *gorm.DB
}

// DBCategory represents the database model for Category
type DBCategory struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"size:255"`
	Active bool   `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBCategory) TableName() string {
	return "categories"
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// List implements domain.CategoryRepository. Active categories come
// first, then by id.
func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]domain.Category, error) {
	var rows []DBCategory
	err := r.db.WithContext(ctx).Order("active DESC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return categoriesToDomain(rows), nil
}

// FindByID implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var row DBCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	category := categoryToDomain(row)
	return &category, nil
}

// Create implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *domain.Category) error {
	row := &DBCategory{Name: category.Name, Active: category.Active}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	category.ID = row.ID
	return nil
}

// Update implements domain.CategoryRepository. A row modified away
// underneath the update surfaces as ErrCategoryNotFound.
func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *domain.Category) error {
	res := r.db.WithContext(ctx).Save(&DBCategory{
		ID:     category.ID,
		Name:   category.Name,
		Active: category.Active,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Deactivate implements domain.CategoryRepository
func (r *CategoryRepositoryImpl) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&DBCategory{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Search implements domain.CategoryRepository. Only active categories
// are matched.
func (r *CategoryRepositoryImpl) Search(ctx context.Context, name string) ([]domain.Category, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	var rows []DBCategory
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return categoriesToDomain(rows), nil
}

// NameExists implements domain.CategoryRepository (exact match)
func (r *CategoryRepositoryImpl) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBCategory{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// NameTaken implements domain.CategoryRepository (case-insensitive,
// excluding the given id)
func (r *CategoryRepositoryImpl) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBCategory{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func categoryToDomain(row DBCategory) domain.Category {
	return domain.Category{ID: row.ID, Name: row.Name, Active: row.Active}
}

func categoriesToDomain(rows []DBCategory) []domain.Category {
	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, categoryToDomain(row))
	}
	return categories
}
