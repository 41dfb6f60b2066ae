// internal/validator/validator_test.go
package validator

import (
	"testing"

	"finance-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"entity_name" validate:"required,notblank"`
	Category string   `json:"category" validate:"required,category"`
	Start    *string  `json:"start_date" validate:"omitempty,isodate"`
	Amount   *float64 `json:"amount" validate:"required,gte=0"`
}

func ptr[T any](v T) *T { return &v }

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"income", "income", true},
		{"Income", "income", true},
		{"EXPENSE", "expense", true},
		{" expense ", "expense", true},
		{"salary", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeCategory(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNormalizeCategoryPtr(t *testing.T) {
	assert.Nil(t, NormalizeCategoryPtr(nil))
	assert.Equal(t, "income", *NormalizeCategoryPtr(ptr("INCOME")))
}

func TestStructValid(t *testing.T) {
	err := Struct(sample{Name: "Acme", Category: "Income", Start: ptr("2024-01-31"), Amount: ptr(0.0)})
	assert.NoError(t, err)
}

func TestStructMissingFields(t *testing.T) {
	err := Struct(sample{Category: "income"})
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Equal(t, "Missing required fields: entity_name, amount", de.Message)
}

func TestStructInvalidValues(t *testing.T) {
	err := Struct(sample{Name: "  ", Category: "salary", Start: ptr("31/01/2024"), Amount: ptr(-1.0)})
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Invalid input", de.Message)
	assert.Contains(t, de.Detail, "entity_name must not be blank")
	assert.Contains(t, de.Detail, "category must be either 'income' or 'expense'")
	assert.Contains(t, de.Detail, "start_date must be in YYYY-MM-DD format")
	assert.Contains(t, de.Detail, "amount must be at least 0")
}
