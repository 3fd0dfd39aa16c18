package learningpath

import (
	"reflect"
	"testing"

	"github.com/adina/skillpilot/internal/profile"
	"github.com/adina/skillpilot/internal/recommend"
)

func TestBuildStepOrderIsNestedTraversal(t *testing.T) {
	p := profile.Build(profile.Partial{})
	role := "Full Stack Developer"

	lp := Build(p, role)
	recs := recommend.Generate(p, role)

	var wantIDs []string
	for _, r := range recs {
		for _, c := range r.Courses {
			wantIDs = append(wantIDs, r.Skill+"-"+c.ID)
		}
	}

	if len(lp.Steps) != len(wantIDs) {
		t.Fatalf("got %d steps, want %d", len(lp.Steps), len(wantIDs))
	}
	for i, id := range wantIDs {
		if lp.Steps[i].ID != id {
			t.Errorf("step[%d].ID = %s, want %s", i, lp.Steps[i].ID, id)
		}
		if lp.Steps[i].Completed {
			t.Errorf("step[%d] starts completed", i)
		}
	}

	if lp.UserID != p.ID {
		t.Errorf("UserID = %q, want %q", lp.UserID, p.ID)
	}
	if lp.TargetRole != role {
		t.Errorf("TargetRole = %q, want %q", lp.TargetRole, role)
	}
}

func TestBuildStepFieldsComeFromCourse(t *testing.T) {
	lp := Build(profile.Profile{ID: "u9"}, "Data Scientist")
	if len(lp.Steps) == 0 {
		t.Fatal("empty path for fully-gapped profile")
	}
	for _, s := range lp.Steps {
		if s.Title == "" || s.Hours <= 0 || s.CourseID == "" {
			t.Errorf("step %s has incomplete course data: %+v", s.ID, s)
		}
		if s.ID != s.Skill+"-"+s.CourseID {
			t.Errorf("step ID %q not derived from skill and course", s.ID)
		}
	}
}

func TestToggleStep(t *testing.T) {
	lp := Build(profile.Build(profile.Partial{}), "Frontend Engineer")
	if len(lp.Steps) == 0 {
		t.Fatal("empty path")
	}
	id := lp.Steps[0].ID

	toggled := ToggleStep(lp, id)
	if !toggled.Steps[0].Completed {
		t.Error("step not marked completed after toggle")
	}
	// Other steps untouched.
	for i := 1; i < len(toggled.Steps); i++ {
		if toggled.Steps[i].Completed {
			t.Errorf("step[%d] toggled unexpectedly", i)
		}
	}
	// Original path unchanged.
	if lp.Steps[0].Completed {
		t.Error("ToggleStep mutated its input")
	}
}

func TestToggleStepRoundTrip(t *testing.T) {
	lp := Build(profile.Build(profile.Partial{}), "Full Stack Developer")
	ids := []string{lp.Steps[0].ID, "not-a-step"}

	for _, id := range ids {
		back := ToggleStep(ToggleStep(lp, id), id)
		if !reflect.DeepEqual(back, lp) {
			t.Errorf("double toggle of %q did not restore the path", id)
		}
	}
}

func TestToggleStepUnknownIDIsNoOp(t *testing.T) {
	lp := Build(profile.Build(profile.Partial{}), "Frontend Engineer")
	got := ToggleStep(lp, "missing-c99")
	if !reflect.DeepEqual(got, lp) {
		t.Error("unknown step ID changed the path")
	}
}

func TestToggleStepDuplicateIDs(t *testing.T) {
	// A pathological path with colliding IDs: all matches toggle together.
	lp := LearningPath{Steps: []Step{
		{ID: "SQL-c7"},
		{ID: "SQL-c7"},
		{ID: "React-c1"},
	}}
	got := ToggleStep(lp, "SQL-c7")
	if !got.Steps[0].Completed || !got.Steps[1].Completed {
		t.Error("duplicate-ID steps should toggle together")
	}
	if got.Steps[2].Completed {
		t.Error("non-matching step toggled")
	}
}

func TestPathAccounting(t *testing.T) {
	lp := LearningPath{Steps: []Step{
		{ID: "a", Hours: 5, Completed: true},
		{ID: "b", Hours: 7},
		{ID: "c", Hours: 2, Completed: true},
	}}
	if got := lp.TotalHours(); got != 14 {
		t.Errorf("TotalHours = %d, want 14", got)
	}
	if got := lp.CompletedCount(); got != 2 {
		t.Errorf("CompletedCount = %d, want 2", got)
	}
}
