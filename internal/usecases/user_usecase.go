package usecases

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
)

// UserUsecase serves profile reads and updates plus the admin customer
// listing. Accounts are created by the identity service; this service
// only mutates profile data.
type UserUsecase struct {
	userRepo domainRepos.UserRepository
}

func NewUserUsecase(userRepo domainRepos.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// Get returns a user by id.
func (uc *UserUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("user not found")
	}
	return user, nil
}

// UpdateProfile applies a customer's own profile changes. The banking
// blob is validated as JSON when present; malformed blobs are rejected
// here so reads never have to.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("user not found")
	}

	if strings.TrimSpace(input.BankingDetails) != "" {
		var details entities.BankingDetails
		if err := json.Unmarshal([]byte(input.BankingDetails), &details); err != nil {
			return nil, errors.NewValidationError(map[string]string{"bankingDetails": "Banking details must be valid JSON"})
		}
		user.BankingDetails = input.BankingDetails
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.IDNumber != "" {
		user.IDNumber = input.IDNumber
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Employer != "" {
		user.Employer = input.Employer
	}
	if input.Occupation != "" {
		user.Occupation = input.Occupation
	}
	if input.IncomeLevel != "" {
		user.IncomeLevel = input.IncomeLevel
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.InternalError(err)
	}
	return user, nil
}

// UpdateContact applies an admin's contact-detail change to a customer.
func (uc *UserUsecase) UpdateContact(ctx context.Context, userID uuid.UUID, input *entities.UpdateContactInput) (*entities.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("user not found")
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.InternalError(err)
	}
	return user, nil
}

// ListCustomers returns customers for the admin listing.
func (uc *UserUsecase) ListCustomers(ctx context.Context, filter domainRepos.ListFilter) ([]*entities.User, int64, error) {
	return uc.userRepo.List(ctx, filter)
}
