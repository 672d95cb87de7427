package common

import "strings"

// Role 表示用户角色。
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Capability 是可以授予角色的单项权限。
type Capability int

const (
	CapViewPending Capability = iota + 1
	CapSelfApprove
	CapApprovePlant
	CapRejectPlant
	CapManageUsers
)

// moderator is accepted as a stored value but holds nothing yet.
var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleAdmin: {
		CapViewPending:  {},
		CapSelfApprove:  {},
		CapApprovePlant: {},
		CapRejectPlant:  {},
		CapManageUsers:  {},
	},
}

// ParseRole 解析角色字符串，大小写不敏感。
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if !role.Valid() {
		return "", false
	}
	return role, true
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// Can 报告角色是否拥有指定权限。
func (r Role) Can(capability Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	_, ok = caps[capability]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
