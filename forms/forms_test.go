package forms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/forms"
	"github.com/homemanager/hmctl/internal/errors"
)

func validTenantForm() forms.TenantForm {
	return forms.TenantForm{
		Name:        "Alice Smith",
		PhoneNumber: "0712345678",
		Email:       "alice@example.com",
		UnitID:      3,
		MoveInDate:  "2026-01-15",
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	require.NoError(t, forms.Validate(validTenantForm()))
}

func TestValidateReportsMissingFields(t *testing.T) {
	form := forms.TenantForm{}
	err := forms.Validate(form)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrValidation))

	var validationErrs *forms.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	fields := map[string]string{}
	for _, fieldErr := range validationErrs.Fields {
		fields[fieldErr.Field] = fieldErr.Message
	}
	require.Equal(t, "is required", fields["Name"])
	require.Equal(t, "is required", fields["PhoneNumber"])
	require.Equal(t, "is required", fields["UnitID"])
	require.Equal(t, "is required", fields["MoveInDate"])
}

func TestValidateRejectsBadEmail(t *testing.T) {
	form := validTenantForm()
	form.Email = "not-an-email"

	err := forms.Validate(form)
	require.Error(t, err)

	var validationErrs *forms.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs.Fields, 1)
	require.Equal(t, "Email", validationErrs.Fields[0].Field)
	require.Equal(t, "must be a valid email address", validationErrs.Fields[0].Message)
}

func TestValidateRejectsBadDate(t *testing.T) {
	form := validTenantForm()
	form.MoveInDate = "15/01/2026"

	err := forms.Validate(form)
	require.Error(t, err)

	var validationErrs *forms.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, "must be a date in YYYY-MM-DD form", validationErrs.Fields[0].Message)
}

func TestValidatePaymentStatusEnum(t *testing.T) {
	form := forms.PaymentForm{
		UnitID:   1,
		TenantID: 2,
		Amount:   1500,
		DueDate:  "2026-02-01",
		Status:   "refunded",
	}

	err := forms.Validate(form)
	require.Error(t, err)

	var validationErrs *forms.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, "Status", validationErrs.Fields[0].Field)
	require.Equal(t, "must be one of: pending paid overdue partial", validationErrs.Fields[0].Message)
}

func TestValidateRejectsNonPositiveAmount(t *testing.T) {
	form := forms.PaymentForm{
		UnitID:   1,
		TenantID: 2,
		Amount:   -10,
		DueDate:  "2026-02-01",
		Status:   "pending",
	}

	err := forms.Validate(form)
	require.Error(t, err)

	var validationErrs *forms.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, "Amount", validationErrs.Fields[0].Field)
	require.Equal(t, "must be greater than 0", validationErrs.Fields[0].Message)
}
