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

// ProfileUsecase checks whether a user's profile carries everything a
// loan application needs.
type ProfileUsecase struct {
	userRepo domainRepos.UserRepository
}

func NewProfileUsecase(userRepo domainRepos.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo}
}

// requiredField pairs a label with its presence check, in display order.
type requiredField struct {
	label   string
	present func(u *entities.User) bool
}

var requiredProfileFields = []requiredField{
	{"First Name", func(u *entities.User) bool { return strings.TrimSpace(u.FirstName) != "" }},
	{"Last Name", func(u *entities.User) bool { return strings.TrimSpace(u.LastName) != "" }},
	{"Email", func(u *entities.User) bool { return strings.TrimSpace(u.Email) != "" }},
	{"Phone Number", func(u *entities.User) bool {
		phone := strings.TrimSpace(u.Phone)
		return phone != "" && phone != entities.PhoneNeedsUpdate
	}},
	{"ID Number", func(u *entities.User) bool { return strings.TrimSpace(u.IDNumber) != "" }},
	{"Employer", func(u *entities.User) bool { return strings.TrimSpace(u.Employer) != "" }},
}

// CheckCompleteness returns the ordered missing-field labels for a user.
// When the banking blob is absent or unparseable the checker reports a
// single generic "Banking Details" entry instead of the four sub-fields;
// that asymmetry is load-bearing for the clients rendering the list.
func CheckCompleteness(user *entities.User) entities.ProfileCompleteness {
	missing := []string{}

	for _, f := range requiredProfileFields {
		if !f.present(user) {
			missing = append(missing, f.label)
		}
	}

	banking, ok := parseBankingDetails(user.BankingDetails)
	if !ok {
		missing = append(missing, "Banking Details")
	} else {
		for _, f := range []struct{ label, value string }{
			{"Bank Name", banking.BankName},
			{"Account Type", banking.AccountType},
			{"Account Number", banking.AccountNumber},
			{"Account Holder Name", banking.AccountName},
		} {
			if strings.TrimSpace(f.value) == "" {
				missing = append(missing, f.label)
			}
		}
	}

	return entities.ProfileCompleteness{
		Complete:      len(missing) == 0,
		MissingFields: missing,
	}
}

// parseBankingDetails decodes the serialized banking blob. Malformed
// JSON degrades to not-ok rather than an error.
func parseBankingDetails(blob string) (*entities.BankingDetails, bool) {
	if strings.TrimSpace(blob) == "" {
		return nil, false
	}
	var details entities.BankingDetails
	if err := json.Unmarshal([]byte(blob), &details); err != nil {
		return nil, false
	}
	return &details, true
}

// CheckUser loads a user and runs the completeness check.
func (uc *ProfileUsecase) CheckUser(ctx context.Context, userID uuid.UUID) (*entities.ProfileCompleteness, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("user not found")
	}

	result := CheckCompleteness(user)
	return &result, nil
}
