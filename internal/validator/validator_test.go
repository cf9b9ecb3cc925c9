package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddFieldError_KeepsFirstMessagePerField(t *testing.T) {
	var v Validator

	v.AddFieldError("email", "Email is required")
	v.AddFieldError("email", "Must be a valid email address")
	v.AddFieldError("name", "Name is required")

	require.True(t, v.HasErrors())
	require.Len(t, v.FieldErrors, 2)
	require.Equal(t, "email", v.FieldErrors[0].Field)
	require.Equal(t, "Email is required", v.FieldErrors[0].Message)
	require.Equal(t, "name", v.FieldErrors[1].Field)
}

func TestCheckField_OnlyRecordsFailures(t *testing.T) {
	var v Validator

	v.CheckField(true, "ok", "should not appear")
	v.CheckField(false, "bad", "should appear")

	require.Len(t, v.FieldErrors, 1)
	require.Equal(t, "bad", v.FieldErrors[0].Field)
}

func TestHelpers(t *testing.T) {
	require.False(t, NotBlank("   "))
	require.True(t, NotBlank("x"))

	require.True(t, Between(5, 1, 10))
	require.False(t, Between(0, 1, 10))

	require.True(t, NoDuplicates([]int{1, 2, 3}))
	require.False(t, NoDuplicates([]int{1, 2, 1}))

	require.True(t, In("member", "member", "minister"))
	require.False(t, In("deacon", "member", "minister"))

	require.True(t, IsEmail("someone@example.org"))
	require.False(t, IsEmail("not-an-email"))
}

func TestMaxRunes_CountsRunesNotBytes(t *testing.T) {
	require.True(t, MaxRunes("héllo", 5))
	require.False(t, MaxRunes("hello!", 5))
}
