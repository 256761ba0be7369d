package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Translator", "is required")
	ve.AddFieldError("Style", "is invalid")
	ve.AddFieldErrorf("RedisDB", "must be at least %d", 0)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "Translator: is required")
	s.Assert().Contains(ve.Error(), "Style: is invalid")
	s.Assert().Contains(ve.Error(), "RedisDB: must be at least 0")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("Dictionary", "is required").
		Fieldf("drawCount", "must be between %d and %d", 1, 52).
		RequiredField("Client")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: Client: is required; Dictionary: is required; drawCount: must be between 1 and 52",
		err.Error())
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("drawCount", 60, 1, 52, vb)
	errors.ValidateRange("flipCount", 5, 1, 20, vb)
	errors.ValidateRange("maxStacks", 0, 1, 10, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["drawCount"][0], "must be between 1 and 52")
	s.Assert().Contains(validationErrors["maxStacks"][0], "must be between 1 and 10")
	s.Assert().NotContains(validationErrors, "flipCount")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedStyles := []string{"sentence", "compact"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("style", "verbose", allowedStyles, vb)
	errors.ValidateEnum("fallback_style", "compact", allowedStyles, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["style"][0], "must be one of: sentence, compact")
	s.Assert().NotContains(validationErrors, "fallback_style")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Simulate validating a library put request
	type PutSpellInput struct {
		Name       string
		Style      string
		Level      int
		Categories []string
	}

	input := PutSpellInput{
		Name:       "",
		Style:      "verbose",
		Level:      12,
		Categories: []string{"damage"},
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateEnum("style", input.Style, []string{"sentence", "compact"}, vb)
	errors.ValidateRange("level", input.Level, 0, 9, vb)
	if len(input.Categories) == 0 {
		vb.RequiredField("categories")
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "name")
	s.Assert().Contains(validationErrors, "style")
	s.Assert().Contains(validationErrors, "level")
	s.Assert().NotContains(validationErrors, "categories")
}
