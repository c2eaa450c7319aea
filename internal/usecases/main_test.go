package usecases_test

import (
	"os"
	"testing"

	"loanflow.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}
