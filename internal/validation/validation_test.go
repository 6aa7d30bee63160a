package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formapi/internal/model"
)

func validInput() model.SubmissionInput {
	return model.SubmissionInput{
		MobileNo:    "1234567890",
		ShopName:    "Sharma General Store",
		OwnerName:   "Ramesh Sharma",
		IndName:     "Retail",
		AreaPinCode: "560001",
		Address:     "12 MG Road",
		City:        "Bengaluru",
		Dist:        "Bengaluru Urban",
		State:       "Karnataka",
		Country:     "India",
	}
}

func TestValidator_Struct(t *testing.T) {
	va := New()

	tests := []struct {
		name      string
		mutate    func(in *model.SubmissionInput)
		wantField string
	}{
		{
			name:   "valid payload",
			mutate: func(in *model.SubmissionInput) {},
		},
		{
			name:      "mobile too short",
			mutate:    func(in *model.SubmissionInput) { in.MobileNo = "12345" },
			wantField: "mobile_no",
		},
		{
			name:      "mobile non-digit",
			mutate:    func(in *model.SubmissionInput) { in.MobileNo = "12345abcde" },
			wantField: "mobile_no",
		},
		{
			name:      "pin code too short",
			mutate:    func(in *model.SubmissionInput) { in.AreaPinCode = "12345" },
			wantField: "area_pin_code",
		},
		{
			name:      "pin code too long",
			mutate:    func(in *model.SubmissionInput) { in.AreaPinCode = "1234567" },
			wantField: "area_pin_code",
		},
		{
			name:      "empty shop name",
			mutate:    func(in *model.SubmissionInput) { in.ShopName = "" },
			wantField: "shop_name",
		},
		{
			name:      "empty country",
			mutate:    func(in *model.SubmissionInput) { in.Country = "" },
			wantField: "country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := va.Struct(in)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Reason)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "mobile_no", Reason: "must be exactly 10 characters"}
	assert.Equal(t, "validation failed: mobile_no must be exactly 10 characters", err.Error())
}
