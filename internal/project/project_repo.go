package project

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, proj *Project) error
	FindAll(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	FindAssignments(ctx context.Context, projectID string) ([]AssignmentRow, error)
	ReplaceAssignments(ctx context.Context, projectID string, assignments []Assignment) error
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).Create(proj).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Project, error) {
	var projs []Project
	err := r.db.WithContext(ctx).Find(&projs).Error
	return projs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var proj Project
	err := r.db.WithContext(ctx).First(&proj, "id = ?", id).Error
	return &proj, err
}

func (r *repository) FindAssignments(ctx context.Context, projectID string) ([]AssignmentRow, error) {
	var rows []AssignmentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT pa.employee_id::text AS employee_id, e.first_name, e.last_name, pa.part_time
		FROM project_assignments pa
		JOIN employees e ON e.id = pa.employee_id
		WHERE pa.project_id = ?
		ORDER BY e.last_name, e.first_name
	`, projectID).Scan(&rows).Error
	return rows, err
}

// ReplaceAssignments swaps the full edge set in one go. The form always
// submits the complete assignment list, so a delete-then-insert keeps the
// edge table exactly in sync with it.
func (r *repository) ReplaceAssignments(ctx context.Context, projectID string, assignments []Assignment) error {
	if err := r.db.WithContext(ctx).
		Delete(&Assignment{}, "project_id = ?", projectID).Error; err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}

func (r *repository) Update(ctx context.Context, proj *Project) error {
	return r.db.WithContext(ctx).Save(proj).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id).Error
}
