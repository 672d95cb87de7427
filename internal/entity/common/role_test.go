package common

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"user", RoleUser, true},
		{" Admin ", RoleAdmin, true},
		{"MODERATOR", RoleModerator, true},
		{"root", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRoleCapabilities(t *testing.T) {
	caps := []Capability{CapViewPending, CapSelfApprove, CapApprovePlant, CapRejectPlant, CapManageUsers}

	for _, c := range caps {
		if !RoleAdmin.Can(c) {
			t.Errorf("admin should hold capability %d", c)
		}
		if RoleUser.Can(c) {
			t.Errorf("user should not hold capability %d", c)
		}
		if RoleModerator.Can(c) {
			t.Errorf("moderator should not hold capability %d", c)
		}
		if Role("").Can(c) {
			t.Errorf("anonymous should not hold capability %d", c)
		}
	}
}

func TestBaseParamsNormalize(t *testing.T) {
	p := BaseParams{Page: 0, PageSize: 500}
	p.Normalize(20, 100)
	if p.Page != 1 || p.PageSize != 100 {
		t.Fatalf("unexpected normalized params: %+v", p)
	}
	if p.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", p.Offset())
	}

	p = BaseParams{Page: 3, PageSize: 10}
	p.Normalize(20, 100)
	if p.Offset() != 20 {
		t.Errorf("Offset() = %d, want 20", p.Offset())
	}
}
