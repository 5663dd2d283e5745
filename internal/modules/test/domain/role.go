package domain

import (
	"fmt"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// RoleSelection is a set of roles picked by a user.
type RoleSelection struct {
	RoleIDs []snowflake.ID
}

// NewRoleSelection parses the picked role ids, dropping duplicates.
func NewRoleSelection(values []string) (*RoleSelection, error) {
	seen := make(map[snowflake.ID]struct{}, len(values))
	ids := make([]snowflake.ID, 0, len(values))

	for _, v := range values {
		id, err := snowflake.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid role id %q: %w", v, err)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return &RoleSelection{RoleIDs: ids}, nil
}

// Summary renders the selection as role mentions.
func (s *RoleSelection) Summary() string {
	if len(s.RoleIDs) == 0 {
		return "No roles selected."
	}

	mentions := make([]string, len(s.RoleIDs))
	for i, id := range s.RoleIDs {
		mentions[i] = RoleMention(id)
	}
	return "Selected roles: " + strings.Join(mentions, ", ")
}

// RoleMention formats a role mention.
func RoleMention(id snowflake.ID) string {
	return "<@&" + id.String() + ">"
}
