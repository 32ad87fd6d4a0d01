package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id uint) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, empl *Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Save inserts when ID is zero and updates the full row otherwise. The
// generated id is written back into empl.
func (r *repository) Save(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Find(&empls).Error
	return empls, err
}

func (r *repository) Delete(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Delete(empl).Error
}
