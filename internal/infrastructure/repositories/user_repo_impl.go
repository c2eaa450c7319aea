package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loanflow.backend/internal/domain/entities"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/internal/infrastructure/models"
)

// userSortFields whitelists sortable columns for the customer listing.
var userSortFields = map[string]string{
	"firstname": "first_name",
	"lastname":  "last_name",
	"email":     "email",
	"createdAt": "created_at",
}

// UserRepositoryImpl implements UserRepository
type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entities.User) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name":      user.FirstName,
			"last_name":       user.LastName,
			"email":           user.Email,
			"phone":           user.Phone,
			"id_number":       user.IDNumber,
			"address":         user.Address,
			"employer":        user.Employer,
			"occupation":      user.Occupation,
			"income_level":    user.IncomeLevel,
			"banking_details": user.BankingDetails,
			"updated_at":      time.Now(),
		}).Error
}

// List returns customers matching the filter. Soft-deleted accounts are
// excluded; users are never hard-deleted.
func (r *UserRepositoryImpl) List(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.User, int64, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("role = ?", string(entities.UserRoleUser)).
		Where("deleted = ?", false)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR id_number LIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order(orderClause(userSortFields, filter.SortField, filter.SortDirection))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var ms []models.User
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		IDNumber:       m.IDNumber,
		Address:        m.Address,
		Employer:       m.Employer,
		Occupation:     m.Occupation,
		IncomeLevel:    m.IncomeLevel,
		BankingDetails: m.BankingDetails,
		Role:           entities.UserRole(m.Role),
		Deleted:        m.Deleted,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
