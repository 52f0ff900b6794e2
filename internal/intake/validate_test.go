package intake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccepts(t *testing.T) {
	v := NewValidator(0)

	sub, errs := v.Validate(map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Hello!",
	})

	require.Empty(t, errs)
	assert.Equal(t, "Jane", sub.Name)
	assert.Equal(t, "jane@example.com", sub.Email)
	assert.Equal(t, "Hello!", sub.Message)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	v := NewValidator(0)

	_, errs := v.Validate(map[string]string{
		"name":    "",
		"email":   "not-an-email",
		"message": "",
	})

	require.Len(t, errs, 3)

	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.Path)
		assert.NotEmpty(t, e.Message)
	}
	assert.ElementsMatch(t, []string{"name", "email", "message"}, paths)
}

func TestValidateNameLength(t *testing.T) {
	v := NewValidator(0)

	ok := map[string]string{
		"name":    strings.Repeat("a", MaxNameLen),
		"email":   "jane@example.com",
		"message": "hi",
	}
	_, errs := v.Validate(ok)
	assert.Empty(t, errs)

	ok["name"] = strings.Repeat("a", MaxNameLen+1)
	_, errs = v.Validate(ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Path)
}

func TestValidateMessageLength(t *testing.T) {
	v := NewValidator(10)

	fields := map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": strings.Repeat("x", 10),
	}
	_, errs := v.Validate(fields)
	assert.Empty(t, errs)

	fields["message"] = strings.Repeat("x", 11)
	_, errs = v.Validate(fields)
	require.Len(t, errs, 1)
	assert.Equal(t, "message", errs[0].Path)
}

func TestValidateEmailGrammar(t *testing.T) {
	v := NewValidator(0)

	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.uk",
	}
	for _, email := range valid {
		_, errs := v.Validate(map[string]string{
			"name": "Jane", "email": email, "message": "hi",
		})
		assert.Empty(t, errs, "expected %q to be accepted", email)
	}

	invalid := []string{
		"not-an-email",
		"jane@",
		"@example.com",
		"Jane Doe <jane@example.com>",
		"jane@example.com extra",
	}
	for _, email := range invalid {
		_, errs := v.Validate(map[string]string{
			"name": "Jane", "email": email, "message": "hi",
		})
		require.Len(t, errs, 1, "expected %q to be rejected", email)
		assert.Equal(t, "email", errs[0].Path)
	}
}

func TestValidateDropsUnknownFields(t *testing.T) {
	v := NewValidator(0)

	sub, errs := v.Validate(map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "hi",
		"subject": "ignored",
		"phone":   "555-0100",
	})

	require.Empty(t, errs)
	assert.Equal(t, Submission{Name: "Jane", Email: "jane@example.com", Message: "hi"}, sub)
}
