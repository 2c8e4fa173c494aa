package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"store-ratings/internal/domain"
)

func TestCheckPassword(t *testing.T) {
	// 9 chars, uppercase, special
	assert.Nil(t, domain.CheckPassword("Passw0rd!"))

	// no uppercase, no special
	assert.NotNil(t, domain.CheckPassword("password"))

	// 7 chars
	assert.NotNil(t, domain.CheckPassword("Short1!"))

	// 17 chars
	assert.NotNil(t, domain.CheckPassword("Abcdefgh!Abcdefgh"))

	// special character outside the fixed set
	assert.NotNil(t, domain.CheckPassword("Password1?"))
	assert.Nil(t, domain.CheckPassword("Password1#"))
}

func TestCheckNameBoundaries(t *testing.T) {
	assert.NotNil(t, domain.CheckName(strings.Repeat("a", 19)))
	assert.Nil(t, domain.CheckName(strings.Repeat("a", 20)))
	assert.Nil(t, domain.CheckName(strings.Repeat("a", 60)))
	assert.NotNil(t, domain.CheckName(strings.Repeat("a", 61)))
}

func TestCheckEmail(t *testing.T) {
	assert.Nil(t, domain.CheckEmail("user@example.com"))
	assert.NotNil(t, domain.CheckEmail("not-an-email"))
	assert.NotNil(t, domain.CheckEmail("user@nodot"))
	assert.NotNil(t, domain.CheckEmail("spaces in@example.com"))
}

func TestCheckAddress(t *testing.T) {
	assert.Nil(t, domain.CheckAddress(strings.Repeat("a", 400)))
	assert.NotNil(t, domain.CheckAddress(strings.Repeat("a", 401)))
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"system_administrator", "normal_user", "store_owner"} {
		r, ok := domain.ParseRole(s)
		assert.True(t, ok)
		assert.True(t, r.Valid())
	}
	_, ok := domain.ParseRole("admin")
	assert.False(t, ok)
}

func TestCollect(t *testing.T) {
	assert.NoError(t, domain.Collect(nil, nil))

	err := domain.Collect(domain.CheckName("short"), domain.CheckPassword("password"))
	assert.Error(t, err)
}
