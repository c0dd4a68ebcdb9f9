// Package users models the role-based user records shown by `areacalc users`.
//
// A User is a single record with a role tag. Role-specific data lives in the
// record (privileges for admins, sections for moderators) and access
// descriptions are a capability check over the role tag.
package users

import (
	"fmt"
	"slices"
	"strings"
)

// Role tags a user record.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleGuest     Role = "guest"
	RoleModerator Role = "moderator"
)

// DefaultPrivileges are granted to every admin.
var DefaultPrivileges = []string{"READ_ALL", "WRITE_ALL", "DELETE_ALL"}

// DefaultSections are moderated by every new moderator.
var DefaultSections = []string{"Forum", "Comments"}

// User is a role-tagged user record.
type User struct {
	Username   string   `json:"username" yaml:"username"`
	ID         int      `json:"id" yaml:"id"`
	Role       Role     `json:"role" yaml:"role"`
	Privileges []string `json:"privileges,omitempty" yaml:"privileges,omitempty"` // admin only
	Sections   []string `json:"sections,omitempty" yaml:"sections,omitempty"`     // moderator only
}

// New creates a plain user.
func New(username string, id int) User {
	return User{Username: username, ID: id, Role: RoleUser}
}

// NewAdmin creates an admin holding DefaultPrivileges.
func NewAdmin(username string, id int) User {
	return User{Username: username, ID: id, Role: RoleAdmin, Privileges: slices.Clone(DefaultPrivileges)}
}

// NewGuest creates a guest.
func NewGuest(username string, id int) User {
	return User{Username: username, ID: id, Role: RoleGuest}
}

// NewModerator creates a moderator of DefaultSections.
func NewModerator(username string, id int) User {
	return User{Username: username, ID: id, Role: RoleModerator, Sections: slices.Clone(DefaultSections)}
}

// Info returns the one-line identity string.
func (u User) Info() string {
	info := fmt.Sprintf("User: %s (ID: %d)", u.Username, u.ID)
	switch u.Role {
	case RoleAdmin:
		info += " [Admin]"
	case RoleGuest:
		info += " [Guest]"
	case RoleModerator:
		info += " [Moderator]"
	}
	return info
}

// Login returns the login message.
func (u User) Login() string {
	msg := u.Username + " logged in."
	switch u.Role {
	case RoleAdmin:
		msg += " with ADMIN privileges."
	case RoleGuest:
		msg += " with limited access."
	}
	return msg
}

// Logout returns the logout message.
func (u User) Logout() string {
	return u.Username + " logged out."
}

// AccessDescription describes what the user may do. The boolean is false for
// roles without access details.
func (u User) AccessDescription() (string, bool) {
	switch u.Role {
	case RoleAdmin:
		return "Admin Privileges: " + strings.Join(u.Privileges, ", "), true
	case RoleGuest:
		return "Guest can only read public content.", true
	case RoleModerator:
		return "Moderator sections: " + strings.Join(u.Sections, ", "), true
	default:
		return "", false
	}
}

// AddSection appends a moderated section. Only moderators accept sections.
func (u *User) AddSection(section string) error {
	if u.Role != RoleModerator {
		return fmt.Errorf("user %s is %s, only moderators have sections", u.Username, u.Role)
	}
	u.Sections = append(u.Sections, section)
	return nil
}

// AddPrivilege grants a privilege. Only admins hold privileges.
func (u *User) AddPrivilege(privilege string) error {
	if u.Role != RoleAdmin {
		return fmt.Errorf("user %s is %s, only admins have privileges", u.Username, u.Role)
	}
	if slices.Contains(u.Privileges, privilege) {
		return nil
	}
	u.Privileges = append(u.Privileges, privilege)
	return nil
}

// Demo returns the sample users in display order.
func Demo() []User {
	return []User{
		New("JohnDoe", 101),
		NewAdmin("AliceAdmin", 1),
		NewGuest("BobGuest", 202),
		NewModerator("CharlieMod", 303),
	}
}

// PolyAdmin is the admin shown in the trailer of the demo transcript.
func PolyAdmin() User {
	return NewAdmin("PolyAdmin", 999)
}
