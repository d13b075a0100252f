package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"mindspace/internal/model"
)

// Validate is the shared validator instance.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("priority", validatePriority); err != nil {
		panic(fmt.Sprintf("failed to register priority validator: %v", err))
	}
	if err := Validate.RegisterValidation("mood_score", validateMoodScore); err != nil {
		panic(fmt.Sprintf("failed to register mood_score validator: %v", err))
	}
	if err := Validate.RegisterValidation("reset_time", validateResetTime); err != nil {
		panic(fmt.Sprintf("failed to register reset_time validator: %v", err))
	}
}

// validatePriority accepts the low/medium/high task priority enum.
func validatePriority(fl validator.FieldLevel) bool {
	return model.Priority(fl.Field().String()).Valid()
}

// validateMoodScore accepts scores on the 1-5 scale.
func validateMoodScore(fl validator.FieldLevel) bool {
	return model.ValidMoodScore(int(fl.Field().Int()))
}

// validateResetTime accepts "HH:MM" time-of-day strings.
func validateResetTime(fl validator.FieldLevel) bool {
	_, _, err := model.ParseResetTime(fl.Field().String())
	return err == nil
}
