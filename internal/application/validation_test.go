package application

import (
	"errors"
	"testing"

	"taxcollection/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: FieldName,
			value:     "Sales Tax",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: FieldName,
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: FieldName,
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if valErr.Message != MsgRequired {
					t.Errorf("expected message %q, got %q", MsgRequired, valErr.Message)
				}
			}
		})
	}
}

func TestValidateRate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    float64
		wantMsg string
	}{
		{name: "integer", value: "5", want: 5},
		{name: "decimal", value: "7.5", want: 7.5},
		{name: "zero", value: "0", want: 0},
		{name: "surrounding spaces", value: " 12.25 ", want: 12.25},
		{name: "empty", value: "", wantMsg: MsgRequired},
		{name: "not a number", value: "abc", wantMsg: MsgNotANumber},
		{name: "negative", value: "-1", wantMsg: MsgNonNegative},
		{name: "NaN", value: "NaN", wantMsg: MsgNonNegative},
		{name: "infinity", value: "Inf", wantMsg: MsgNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRate(FieldRate, tt.value)

			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
				return
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, valErr.Message)
			}
		})
	}
}

func TestValidateTaxForm(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := ValidateTaxForm("  VAT ", "20", domain.ModeAll)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Name != "VAT" || v.Rate != 20 || v.AppliedTo != domain.ModeAll {
			t.Errorf("unexpected values: %+v", v)
		}
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		_, err := ValidateTaxForm("", "-3", domain.ModeSome)
		if !errors.Is(err, ErrInvalidForm) {
			t.Fatalf("expected ErrInvalidForm, got %v", err)
		}

		var errs ValidationErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected ValidationErrors, got %T", err)
		}
		if errs.Field(FieldName) != MsgRequired {
			t.Errorf("expected name error %q, got %q", MsgRequired, errs.Field(FieldName))
		}
		if errs.Field(FieldRate) != MsgNonNegative {
			t.Errorf("expected rate error %q, got %q", MsgNonNegative, errs.Field(FieldRate))
		}
	})
}
