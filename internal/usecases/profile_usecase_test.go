package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/usecases"
)

func TestCheckCompleteness_CompleteProfile(t *testing.T) {
	user := completeUser(uuid.New())

	result := usecases.CheckCompleteness(user)

	assert.True(t, result.Complete)
	assert.Empty(t, result.MissingFields)
}

func TestCheckCompleteness_OnlyIDNumberMissing(t *testing.T) {
	user := completeUser(uuid.New())
	user.IDNumber = ""

	result := usecases.CheckCompleteness(user)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{"ID Number"}, result.MissingFields)
}

func TestCheckCompleteness_PhoneSentinelCountsAsMissing(t *testing.T) {
	user := completeUser(uuid.New())
	user.Phone = entities.PhoneNeedsUpdate

	result := usecases.CheckCompleteness(user)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{"Phone Number"}, result.MissingFields)
}

func TestCheckCompleteness_FieldOrderIsStable(t *testing.T) {
	user := &entities.User{BankingDetails: ""}

	result := usecases.CheckCompleteness(user)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{
		"First Name",
		"Last Name",
		"Email",
		"Phone Number",
		"ID Number",
		"Employer",
		"Banking Details",
	}, result.MissingFields)
}

func TestCheckCompleteness_BankingBlobSubFields(t *testing.T) {
	user := completeUser(uuid.New())
	user.BankingDetails = `{"bankName":"FNB","accountType":"","accountNumber":"","accountName":"T Mokoena"}`

	result := usecases.CheckCompleteness(user)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{"Account Type", "Account Number"}, result.MissingFields)
}

func TestCheckCompleteness_MalformedBankingBlobReportsGenericEntry(t *testing.T) {
	user := completeUser(uuid.New())
	user.BankingDetails = `{not json`

	result := usecases.CheckCompleteness(user)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{"Banking Details"}, result.MissingFields)
}

func TestCheckCompleteness_AbsentBankingBlobReportsGenericEntry(t *testing.T) {
	user := completeUser(uuid.New())
	user.BankingDetails = ""

	result := usecases.CheckCompleteness(user)

	assert.False(t, result.Complete)
	assert.Equal(t, []string{"Banking Details"}, result.MissingFields)
}

func TestProfileUsecase_CheckUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewProfileUsecase(userRepo)

	userID := uuid.New()
	user := completeUser(userID)
	user.Employer = ""

	userRepo.On("GetByID", mockAnything, userID).Return(user, nil)

	result, err := uc.CheckUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Equal(t, []string{"Employer"}, result.MissingFields)
	userRepo.AssertExpectations(t)
}

func TestProfileUsecase_CheckUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewProfileUsecase(userRepo)

	userID := uuid.New()
	userRepo.On("GetByID", mockAnything, userID).Return(nil, assert.AnError)

	result, err := uc.CheckUser(context.Background(), userID)

	assert.Error(t, err)
	assert.Nil(t, result)
}
