package repository

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/department"
	"context"
)

type DepartmentRepository struct {
	client *ent.Client
}

func NewDepartmentRepository(client *ent.Client) *DepartmentRepository {
	return &DepartmentRepository{
		client: client,
	}
}

func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*ent.Department, error) {
	return r.client.Department.Query().
		Where(department.Code(code), department.IsActive(true)).
		Only(ctx)
}

// FindForCategory picks the active department whose handled-category list
// contains the given category. The department table is small, so the JSON
// list is matched in memory rather than in SQL.
func (r *DepartmentRepository) FindForCategory(ctx context.Context, category string) (*ent.Department, error) {
	departments, err := r.client.Department.Query().
		Where(department.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range departments {
		for _, c := range d.Categories {
			if c == category {
				return d, nil
			}
		}
	}

	return nil, nil
}
