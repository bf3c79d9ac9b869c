package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one post and optionally to a parent comment,
// forming a tree of unbounded depth. Stored as an adjacency list
// (post_id, parent_id); children are resolved by indexed lookup, never by
// embedded ownership.
type Comment struct {
	ID       uuid.UUID
	PostID   uuid.UUID
	ParentID *uuid.UUID

	// Authenticated author, captured from the auth collaborator's token
	AuthorID     *uuid.UUID
	AuthorHandle string

	// Anonymous identity, stored verbatim
	Name  string
	Email string

	Content   string
	Approved  bool
	CreatedAt time.Time
}

// =====================================================
// IDENTITY RESOLUTION
// =====================================================

// IdentityKind discriminates who left a comment
type IdentityKind int

const (
	IdentityAnonymous IdentityKind = iota
	IdentityNamed
	IdentityEmailed
	IdentityAuthenticated
)

// Identity is the discriminated form of a comment's authorship, resolved
// once from the stored fields instead of cascading nil checks at every
// call site.
type Identity struct {
	Kind   IdentityKind
	Name   string // IdentityNamed
	Email  string // IdentityEmailed
	Handle string // IdentityAuthenticated
}

// Identity resolves the comment's authorship in display priority order:
// explicit name, then email, then authenticated handle, then anonymous.
func (c *Comment) Identity() Identity {
	switch {
	case c.Name != "":
		return Identity{Kind: IdentityNamed, Name: c.Name}
	case c.Email != "":
		return Identity{Kind: IdentityEmailed, Email: c.Email}
	case c.AuthorID != nil && c.AuthorHandle != "":
		return Identity{Kind: IdentityAuthenticated, Handle: c.AuthorHandle}
	default:
		return Identity{Kind: IdentityAnonymous}
	}
}

// DisplayName renders an identity for public display. Pure function.
func DisplayName(id Identity) string {
	switch id.Kind {
	case IdentityNamed:
		return id.Name
	case IdentityEmailed:
		if masked := MaskEmail(id.Email); masked != nil {
			return *masked
		}
		return "Anonymous"
	case IdentityAuthenticated:
		return id.Handle
	default:
		return "Anonymous"
	}
}

// MaskEmail hides the local part of an email for display:
// "ab@example.com" -> "ab***@example.com". A malformed value without
// exactly one "@" is returned unmodified; an empty value yields nil.
func MaskEmail(email string) *string {
	if email == "" {
		return nil
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return &email
	}

	local := []rune(parts[0])
	if len(local) > 2 {
		local = local[:2]
	}

	masked := string(local) + "***@" + parts[1]
	return &masked
}
