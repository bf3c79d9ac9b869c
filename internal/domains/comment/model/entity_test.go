package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskEmail_Valid(t *testing.T) {
	masked := MaskEmail("ab@example.com")
	require.NotNil(t, masked)
	assert.Equal(t, "ab***@example.com", *masked)
}

func TestMaskEmail_LongLocalPart(t *testing.T) {
	masked := MaskEmail("alexandra@example.com")
	require.NotNil(t, masked)
	assert.Equal(t, "al***@example.com", *masked)
}

func TestMaskEmail_ShortLocalPart(t *testing.T) {
	masked := MaskEmail("a@example.com")
	require.NotNil(t, masked)
	assert.Equal(t, "a***@example.com", *masked)
}

func TestMaskEmail_Empty(t *testing.T) {
	assert.Nil(t, MaskEmail(""))
}

func TestMaskEmail_NoAtSign(t *testing.T) {
	masked := MaskEmail("not-an-email")
	require.NotNil(t, masked)
	assert.Equal(t, "not-an-email", *masked)
}

func TestMaskEmail_MultipleAtSigns(t *testing.T) {
	masked := MaskEmail("a@b@c")
	require.NotNil(t, masked)
	assert.Equal(t, "a@b@c", *masked)
}

func TestIdentity_NameWins(t *testing.T) {
	authorID := uuid.New()
	c := Comment{
		Name:         "Jamie",
		Email:        "jamie@example.com",
		AuthorID:     &authorID,
		AuthorHandle: "jamie_h",
	}

	id := c.Identity()
	assert.Equal(t, IdentityNamed, id.Kind)
	assert.Equal(t, "Jamie", DisplayName(id))
}

func TestIdentity_EmailFallsBackToMasked(t *testing.T) {
	c := Comment{Email: "jamie@example.com"}

	id := c.Identity()
	assert.Equal(t, IdentityEmailed, id.Kind)
	assert.Equal(t, "ja***@example.com", DisplayName(id))
}

func TestIdentity_AuthenticatedHandle(t *testing.T) {
	authorID := uuid.New()
	c := Comment{AuthorID: &authorID, AuthorHandle: "editor42"}

	id := c.Identity()
	assert.Equal(t, IdentityAuthenticated, id.Kind)
	assert.Equal(t, "editor42", DisplayName(id))
}

func TestIdentity_Anonymous(t *testing.T) {
	c := Comment{}

	id := c.Identity()
	assert.Equal(t, IdentityAnonymous, id.Kind)
	assert.Equal(t, "Anonymous", DisplayName(id))
}
