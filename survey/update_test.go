package survey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUpdateProfile_BlendsWithTruncation(t *testing.T) {
	t.Parallel()

	tbl := InitializeDefaults(Catalog(), Parties())
	tbl[Republican]["Q1"] = 1
	before := tbl.Clone()

	if err := UpdateProfile(tbl, Republican, Responses{"Q1": 3, "Q2": 3, "Q3": 1}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if got := tbl[Republican]["Q1"]; got != 2 {
		t.Fatalf("Q1=%d, want (1+3)/2=2", got)
	}
	if got := tbl[Republican]["Q2"]; got != 1 {
		t.Fatalf("Q2=%d, want (0+3)/2=1", got)
	}
	if got := tbl[Republican]["Q3"]; got != 0 {
		t.Fatalf("Q3=%d, want (0+1)/2=0", got)
	}
	if got := tbl[Republican]["Q4"]; got != 0 {
		t.Fatalf("unanswered Q4=%d, want unchanged 0", got)
	}

	// Other parties are untouched.
	for _, p := range []Party{Democratic, Libertarian, Green} {
		if diff := cmp.Diff(before[p], tbl[p]); diff != "" {
			t.Fatalf("%s changed (-want +got):\n%s", p, diff)
		}
	}
}

func TestUpdateProfile_DefaultsToSelfOnMissingEntry(t *testing.T) {
	t.Parallel()

	tbl := ProfileTable{Democratic: {"Q1": 0}}
	if err := UpdateProfile(tbl, Green, Responses{"Q1": 3, "Q2": 2}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	want := QuestionProfile{"Q1": 3, "Q2": 2}
	if diff := cmp.Diff(want, tbl[Green]); diff != "" {
		t.Fatalf("Green mismatch (-want +got):\n%s", diff)
	}

	// Existing profile with a missing question also defaults to the response.
	if err := UpdateProfile(tbl, Democratic, Responses{"Q5": 3}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got := tbl[Democratic]["Q5"]; got != 3 {
		t.Fatalf("Democratic Q5=%d, want 3", got)
	}
}

func TestUpdateProfile_RepeatedUpdatesApproachButLag(t *testing.T) {
	t.Parallel()

	tbl := InitializeDefaults(Catalog(), Parties())
	var seen []int
	for i := 0; i < 3; i++ {
		if err := UpdateProfile(tbl, Green, Responses{"Q1": 3}); err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		seen = append(seen, tbl[Green]["Q1"])
	}
	// 0 -> 1 -> 2 -> 2: truncation keeps it one short of 3.
	if diff := cmp.Diff([]int{1, 2, 2}, seen); diff != "" {
		t.Fatalf("progression mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateProfile_Errors(t *testing.T) {
	t.Parallel()

	if err := UpdateProfile(nil, Green, Responses{"Q1": 1}); err == nil {
		t.Fatalf("expected error for nil table")
	}
	if err := UpdateProfile(ProfileTable{}, Party("Whig"), Responses{"Q1": 1}); err == nil {
		t.Fatalf("expected error for unknown party")
	}
}
