package mailer

import (
	"testing"

	"pet-house-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestSendAdoptionOutcomeSkipsWithoutHost(t *testing.T) {
	svc := NewEmailService("", 587, "noreply@pethouse.test", "", "Pet House", "http://localhost:5173", logger.NewNopLogger())

	assert.NoError(t, svc.SendAdoptionOutcome("adopter@example.com", "Bella", true))
}

func TestOutcomeContent(t *testing.T) {
	assert.Contains(t, outcomeSubject("Bella", true), "accepted")
	assert.NotContains(t, outcomeSubject("Bella", false), "accepted")

	body := outcomeBody("Bella", false, "https://pethouse.test")
	assert.Contains(t, body, "Bella")
	assert.Contains(t, body, "https://pethouse.test/pet-listing")
}
