package models

import "testing"

func TestPostStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PostStatus
		ok       bool
	}{
		{StatusPendingPayment, StatusPendingVerification, true},
		{StatusPendingVerification, StatusApproved, true},
		{StatusPendingVerification, StatusRejected, true},
		{StatusPendingPayment, StatusApproved, false},
		{StatusPendingPayment, StatusRejected, false},
		{StatusApproved, StatusPendingVerification, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusPendingVerification, false},
		{StatusRejected, StatusApproved, false},
		{StatusPendingVerification, StatusPendingPayment, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestPostStatusValid(t *testing.T) {
	for _, s := range []PostStatus{StatusPendingPayment, StatusPendingVerification, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if PostStatus("published").Valid() {
		t.Error("unknown status must not be valid")
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("moderator"); !ok || r != RoleModerator {
		t.Fatalf("expected moderator role, got %q ok=%v", r, ok)
	}
	if _, ok := ParseRole("superuser"); ok {
		t.Fatal("unknown role must not parse")
	}
	if !RoleAdmin.CanModerate() || !RoleModerator.CanModerate() {
		t.Fatal("admin and moderator must be able to moderate")
	}
	if RoleMember.CanModerate() {
		t.Fatal("member must not moderate")
	}
	if !RoleAdmin.IsAdmin() || RoleModerator.IsAdmin() {
		t.Fatal("only admin has admin capability")
	}
}
