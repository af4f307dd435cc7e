package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Role names seeded at startup.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Permission is a single capability granted by a role.
type Permission string

const (
	PermAttend     Permission = "attend"
	PermOrder      Permission = "order"
	PermComment    Permission = "comment"
	PermAdminister Permission = "administer"
)

// AllPermissions lists every known capability.
var AllPermissions = []Permission{PermAttend, PermOrder, PermComment, PermAdminister}

// PermissionSet is a set of capabilities stored as a sorted comma separated column.
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from the given capabilities.
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether p is in the set.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the capabilities in lexical order.
func (s PermissionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, string(p))
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted list.
func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// Value implements driver.Valuer.
func (s PermissionSet) Value() (driver.Value, error) {
	return strings.Join(s.Sorted(), ","), nil
}

// Scan implements sql.Scanner.
func (s *PermissionSet) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan permission set: unsupported type %T", src)
	}

	set := PermissionSet{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			set[Permission(p)] = struct{}{}
		}
	}
	*s = set
	return nil
}

// Role is a named permission bundle assigned to users.
type Role struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"uniqueIndex;size:64;not null"`
	Permissions PermissionSet `json:"permissions" gorm:"type:varchar(128)"`
	IsDefault   bool          `json:"is_default" gorm:"default:false;index"`
}
