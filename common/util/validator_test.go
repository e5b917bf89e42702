package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/easy-cert-claim/type/payload"
)

type SimpleStruct struct {
	Name string `validate:"required"`
}

type TaggedStruct struct {
	Title  string   `json:"title" validate:"required,min=3,max=10"`
	Label  string   `form:"label" validate:"required"`
	Tags   []string `json:"tags" validate:"min=1"`
	Hidden string   `json:"-" validate:"required"`
}

type NoValidationStruct struct {
	Name string
	Age  int
}

// TestValidateStruct_IssuancePayload tests the claim request payload
func TestValidateStruct_IssuancePayload(t *testing.T) {
	testCases := []struct {
		name       string
		body       payload.IssueCertificatePayload
		shouldFail bool
	}{
		{"Valid claim", payload.IssueCertificatePayload{EventId: 1, Name: "Jane Doe"}, false},
		{"Missing event", payload.IssueCertificatePayload{Name: "Jane Doe"}, true},
		{"Missing name", payload.IssueCertificatePayload{EventId: 1}, true},
		{"Name too long", payload.IssueCertificatePayload{EventId: 1, Name: strings.Repeat("a", 201)}, true},
		{"Name at limit", payload.IssueCertificatePayload{EventId: 1, Name: strings.Repeat("a", 200)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.body)
			if tc.shouldFail {
				assert.Error(t, err, "Should fail validation")
			} else {
				assert.NoError(t, err, "Should pass validation")
			}
		})
	}
}

// TestValidateStruct_BulkWhitelistPayload tests list and element rules
func TestValidateStruct_BulkWhitelistPayload(t *testing.T) {
	assert.NoError(t, ValidateStruct(payload.BulkWhitelistPayload{Names: []string{"Jane Doe", "Budi Santoso"}}))
	assert.Error(t, ValidateStruct(payload.BulkWhitelistPayload{}), "Nil list should fail")
	assert.Error(t, ValidateStruct(payload.BulkWhitelistPayload{Names: []string{}}), "Empty list should fail")
	assert.Error(t, ValidateStruct(payload.BulkWhitelistPayload{Names: []string{strings.Repeat("x", 201)}}), "Long element should fail")
}

// TestValidateStruct_NoValidationTags tests struct without validation tags
func TestValidateStruct_NoValidationTags(t *testing.T) {
	err := ValidateStruct(NoValidationStruct{Age: -5})
	assert.NoError(t, err, "Struct without validation tags should pass")
}

// TestGetValidationErrors_RequiredField tests required field error message
func TestGetValidationErrors_RequiredField(t *testing.T) {
	err := ValidateStruct(SimpleStruct{})
	require.Error(t, err, "Should have validation error")

	errors := GetValidationErrors(err)
	require.Len(t, errors, 1, "Should have one error")
	assert.Equal(t, "Name is required", errors[0], "Error message should be formatted correctly")
}

// TestGetValidationErrors_UsesClientFieldNames tests json and form tag naming
func TestGetValidationErrors_UsesClientFieldNames(t *testing.T) {
	err := ValidateStruct(TaggedStruct{Title: "ab", Hidden: "set"})
	require.Error(t, err)

	errors := GetValidationErrors(err)
	assert.Contains(t, errors, "title must be at least 3 characters")
	assert.Contains(t, errors, "label is required")
	assert.Contains(t, errors, "tags must be at least 1 items")
}

// TestGetValidationErrors_IssuancePayload tests the messages a claimant sees
func TestGetValidationErrors_IssuancePayload(t *testing.T) {
	err := ValidateStruct(payload.IssueCertificatePayload{EventId: 3, Name: strings.Repeat("a", 201)})
	require.Error(t, err)

	errors := GetValidationErrors(err)
	require.Len(t, errors, 1)
	assert.Equal(t, "name must be at most 200 characters", errors[0])
}

// TestGetValidationErrors_NonValidationError tests handling of non-validation errors
func TestGetValidationErrors_NonValidationError(t *testing.T) {
	errors := GetValidationErrors(assert.AnError)
	require.Len(t, errors, 1, "Non-validation errors should still produce a message")
	assert.Equal(t, "Invalid request", errors[0])
}

// TestGetValidationErrors_NilError tests handling of nil error
func TestGetValidationErrors_NilError(t *testing.T) {
	errors := GetValidationErrors(nil)
	assert.Empty(t, errors, "Nil error should return empty slice")
}

// TestValidateStruct_NilPointer tests that a nil payload is reported, not panicked on
func TestValidateStruct_NilPointer(t *testing.T) {
	var body *payload.IssueCertificatePayload
	err := ValidateStruct(body)
	require.Error(t, err)
	assert.NotEmpty(t, GetValidationErrors(err))
}

// TestValidateStruct_Concurrency tests thread safety
func TestValidateStruct_Concurrency(t *testing.T) {
	iterations := 100
	done := make(chan bool, iterations)

	for i := 0; i < iterations; i++ {
		go func() {
			err := ValidateStruct(payload.IssueCertificatePayload{EventId: 1, Name: "Jane Doe"})
			assert.NoError(t, err)

			done <- true
		}()
	}

	for i := 0; i < iterations; i++ {
		<-done
	}
}

func BenchmarkValidateStruct(b *testing.B) {
	body := payload.IssueCertificatePayload{EventId: 1, Name: "Jane Doe"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidateStruct(body)
	}
}
