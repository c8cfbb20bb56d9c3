package service

import (
	"os"
	"testing"

	"justdebate.online/backend/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "json"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
