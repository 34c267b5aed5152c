package dto_test

import (
	"strings"
	"testing"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/gohire/recruitment-service/internal/recruitment/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	out := map[string]string{}
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidate_ChangeStatusInput(t *testing.T) {
	valid := dto.ChangeStatusInput{ID: 42, NewStatus: "accepted", Username: "alice", Password: "correct"}

	tests := []struct {
		name      string
		mutate    func(in *dto.ChangeStatusInput)
		wantField string
	}{
		{"valid", func(in *dto.ChangeStatusInput) {}, ""},
		{"rejected is allowed", func(in *dto.ChangeStatusInput) { in.NewStatus = "rejected" }, ""},
		{"zero id", func(in *dto.ChangeStatusInput) { in.ID = 0 }, "id"},
		{"negative id", func(in *dto.ChangeStatusInput) { in.ID = -3 }, "id"},
		{"unhandled is not a decision", func(in *dto.ChangeStatusInput) { in.NewStatus = "unhandled" }, "newStatus"},
		{"empty status", func(in *dto.ChangeStatusInput) { in.NewStatus = "" }, "newStatus"},
		{"empty username", func(in *dto.ChangeStatusInput) { in.Username = "" }, "username"},
		{"long password", func(in *dto.ChangeStatusInput) { in.Password = strings.Repeat("p", 256) }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := dto.Validate(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldsOf(t, err), tt.wantField)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	err := dto.Validate(dto.LoginInput{Username: "", Password: strings.Repeat("x", 256)})

	fields := fieldsOf(t, err)
	assert.Equal(t, "Invalid username: username can not be empty.", fields["username"])
	assert.Equal(t, "Invalid password: password must be 1-255 characters long.", fields["password"])
	assert.Contains(t, err.Error(), "Invalid username")
}

func TestValidate_CreateApplicantInput(t *testing.T) {
	valid := dto.CreateApplicantInput{
		FirstName:    "Carl",
		LastName:     "Carlsson",
		Email:        "carl@example.com",
		PersonNumber: "19950505-5678",
		Username:     "carl",
		Password:     "secret",
	}
	assert.NoError(t, dto.Validate(valid))

	bad := valid
	bad.Email = "not-an-email"
	bad.PersonNumber = "950505-5678"

	fields := fieldsOf(t, dto.Validate(bad))
	assert.Equal(t, "Invalid email: email is not a valid email address.", fields["email"])
	assert.Equal(t, "Invalid personNumber: personNumber must have the form YYYYMMDD-XXXX.", fields["personNumber"])
}

func TestValidate_CreateApplicantPasswordBytes(t *testing.T) {
	in := dto.CreateApplicantInput{
		FirstName:    "Carl",
		LastName:     "Carlsson",
		Email:        "carl@example.com",
		PersonNumber: "19950505-5678",
		Username:     "carl",
	}

	in.Password = strings.Repeat("p", dto.MaxPasswordBytes)
	assert.NoError(t, dto.Validate(in))

	in.Password = strings.Repeat("p", 100)
	assert.Equal(t, "Invalid password: password must be at most 72 bytes long.", fieldsOf(t, dto.Validate(in))["password"])

	// 40 runes, 80 bytes
	in.Password = strings.Repeat("å", 40)
	assert.Contains(t, fieldsOf(t, dto.Validate(in)), "password")
}
