package application

import (
	"errors"
	"testing"
)

func TestNextStatus_Table(t *testing.T) {
	tests := []struct {
		name     string
		from     Status
		role     Role
		decision Decision
		want     Status
		wantErr  error
	}{
		{"officer approve moves to under review, never approved", StatusPending, RoleOfficer, DecisionApproved, StatusUnderReview, nil},
		{"officer reject", StatusPending, RoleOfficer, DecisionRejected, StatusRejected, nil},
		{"officer request info", StatusPending, RoleOfficer, DecisionRequestInfo, StatusInfoRequested, nil},
		{"approver approve", StatusUnderReview, RoleApprover, DecisionApproved, StatusApproved, nil},
		{"approver reject", StatusUnderReview, RoleApprover, DecisionRejected, StatusRejected, nil},
		{"approver request info", StatusUnderReview, RoleApprover, DecisionRequestInfo, StatusInfoRequested, nil},

		{"officer cannot act on under review", StatusUnderReview, RoleOfficer, DecisionApproved, "", ErrNotReviewable},
		{"approver cannot act on pending", StatusPending, RoleApprover, DecisionApproved, "", ErrNotReviewable},
		{"no decision on approved", StatusApproved, RoleApprover, DecisionApproved, "", ErrNotReviewable},
		{"no decision on rejected", StatusRejected, RoleOfficer, DecisionApproved, "", ErrNotReviewable},
		{"no decision on disbursed", StatusDisbursed, RoleApprover, DecisionRejected, "", ErrNotReviewable},
		{"no decision on info requested", StatusInfoRequested, RoleOfficer, DecisionApproved, "", ErrNotReviewable},
		{"admin is not a reviewer", StatusPending, RoleAdmin, DecisionApproved, "", ErrNotReviewable},
		{"applicant is not a reviewer", StatusPending, RoleApplicant, DecisionApproved, "", ErrNotReviewable},

		{"unknown decision is a validation error", StatusPending, RoleOfficer, Decision("MAYBE"), "", ErrInvalidDecision},
		{"empty decision is a validation error", StatusUnderReview, RoleApprover, Decision(""), "", ErrInvalidDecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.from, tt.role, tt.decision)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.want {
				t.Fatalf("NextStatus(%s,%s,%s) = %s, want %s", tt.from, tt.role, tt.decision, got, tt.want)
			}
		})
	}
}

func TestActor_IsStaff(t *testing.T) {
	staff := []Role{RoleOfficer, RoleApprover, RoleAdmin}
	for _, r := range staff {
		if !(Actor{ID: "x", Role: r}).IsStaff() {
			t.Errorf("%s should be staff", r)
		}
	}
	if (Actor{ID: "x", Role: RoleApplicant}).IsStaff() {
		t.Error("applicant should not be staff")
	}
}
