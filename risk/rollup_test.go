package risk

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
)

func onboardingUser(name, dept string) models.User {
	return models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      name + "@example.com",
		Role:       models.RoleEmployee,
		Department: dept,
	}
}

func TestBuildSnapshotStatusCountsAddUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	onTrack := onboardingUser("asha", "Engineering")
	atRisk := onboardingUser("ben", "Engineering")
	delayed := onboardingUser("chen", "Sales")

	in := Input{
		Users: []models.User{onTrack, atRisk, delayed},
		ProgressByUser: map[primitive.ObjectID][]models.Progress{
			onTrack.ID: {progressRow(90, 0, 60)},
			atRisk.ID:  {progressRow(30, 0, 20)},
			delayed.ID: {progressRow(80, 2, 40)},
		},
		Alerts: []AlertView{
			{Level: "Warning", Message: "low completion", TargetUserID: atRisk.ID},
			{Level: "Critical", Message: "missed deadline", TargetUserID: delayed.ID},
		},
		Now: now,
	}

	s := BuildSnapshot(in)

	if s.TotalEmployees != 3 {
		t.Fatalf("TotalEmployees = %d, want 3", s.TotalEmployees)
	}
	if got := s.OnTrack + s.AtRisk + s.Delayed + s.Unavailable; got != s.TotalEmployees {
		t.Fatalf("status counts sum to %d, want %d", got, s.TotalEmployees)
	}
	if s.OnTrack != 1 || s.AtRisk != 1 || s.Delayed != 1 {
		t.Fatalf("counts = %d/%d/%d, want 1/1/1", s.OnTrack, s.AtRisk, s.Delayed)
	}
}

func TestBuildSnapshotAlertPrecedenceIsAuthoritative(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// High completion but a critical alert: the alert wins the status.
	flagged := onboardingUser("dana", "Engineering")
	// Low completion but no alerts: warning tier, yet status stays On Track.
	quiet := onboardingUser("eli", "Engineering")

	s := BuildSnapshot(Input{
		Users: []models.User{flagged, quiet},
		ProgressByUser: map[primitive.ObjectID][]models.Progress{
			flagged.ID: {progressRow(95, 0, 100)},
			quiet.ID:   {progressRow(25, 0, 15)},
		},
		Alerts: []AlertView{
			{Level: "Critical", Message: "escalated by manager", TargetUserID: flagged.ID},
		},
		Now: now,
	})

	byName := make(map[string]EmployeeRisk)
	for _, e := range s.Employees {
		byName[e.Name] = e
	}

	if got := byName["dana"]; got.Status != StatusDelayed {
		t.Fatalf("flagged employee status = %q, want %q", got.Status, StatusDelayed)
	}
	if got := byName["eli"]; got.Status != StatusOnTrack {
		t.Fatalf("quiet employee status = %q, want %q", got.Status, StatusOnTrack)
	}
	if got := byName["eli"]; got.Assessment.Tier != TierWarning {
		t.Fatalf("quiet employee assessment tier = %q, want %q", got.Assessment.Tier, TierWarning)
	}
}

func TestBuildSnapshotPlaceholderOnBadData(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	healthy := onboardingUser("fay", "Sales")
	broken := onboardingUser("gus", "Sales")

	s := BuildSnapshot(Input{
		Users: []models.User{healthy, broken},
		ProgressByUser: map[primitive.ObjectID][]models.Progress{
			healthy.ID: {progressRow(70, 0, 30)},
			broken.ID:  {progressRow(250, 0, 30)},
		},
		Now: now,
	})

	if s.TotalEmployees != 2 {
		t.Fatalf("TotalEmployees = %d, want 2 (bad data must not abort the rollup)", s.TotalEmployees)
	}
	if s.Unavailable != 1 {
		t.Fatalf("Unavailable = %d, want 1", s.Unavailable)
	}

	for _, e := range s.Employees {
		if e.Name != "gus" {
			continue
		}
		if e.Status != StatusUnavailable {
			t.Fatalf("broken employee status = %q, want %q", e.Status, StatusUnavailable)
		}
		if len(e.Reasons) == 0 || e.Reasons[0] != "data unavailable" {
			t.Fatalf("broken employee reasons = %v, want [data unavailable]", e.Reasons)
		}
	}
}

func TestBuildSnapshotSkipsNonOnboardingRoles(t *testing.T) {
	hr := models.User{ID: primitive.NewObjectID(), Name: "hana", Role: models.RoleHR}
	admin := models.User{ID: primitive.NewObjectID(), Name: "ivo", Role: models.RoleAdmin}
	intern := models.User{ID: primitive.NewObjectID(), Name: "jin", Role: models.RoleIntern}

	s := BuildSnapshot(Input{
		Users: []models.User{hr, admin, intern},
		Now:   time.Now().UTC(),
	})

	if s.TotalEmployees != 1 {
		t.Fatalf("TotalEmployees = %d, want 1 (only the intern is tracked)", s.TotalEmployees)
	}
}

func TestBuildSnapshotCriticalListAndDeptCounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	late := onboardingUser("kim", "")
	fine := onboardingUser("lou", "Engineering")

	s := BuildSnapshot(Input{
		Users: []models.User{late, fine},
		ProgressByUser: map[primitive.ObjectID][]models.Progress{
			late.ID: {progressRow(50, 3, 20)},
			fine.ID: {progressRow(90, 0, 40)},
		},
		Alerts: []AlertView{
			{Level: "Critical", Message: "Missed critical deadline", TargetUserID: late.ID},
		},
		Now: now,
	})

	if len(s.CriticalEmployees) != 1 {
		t.Fatalf("CriticalEmployees = %d, want 1", len(s.CriticalEmployees))
	}
	if got := s.CriticalEmployees[0]; got.Name != "kim" || got.Risk != TierCritical {
		t.Fatalf("critical entry = %+v, want kim/%s", got, TierCritical)
	}

	if s.DeptCounts["Unassigned"] != 1 || s.DeptCounts["Engineering"] != 1 {
		t.Fatalf("DeptCounts = %v, want Unassigned:1 Engineering:1", s.DeptCounts)
	}
}

func TestBuildSnapshotSortsWorstFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	a := onboardingUser("amy", "X")
	b := onboardingUser("bob", "X")
	c := onboardingUser("cat", "X")

	s := BuildSnapshot(Input{
		Users: []models.User{a, b, c},
		ProgressByUser: map[primitive.ObjectID][]models.Progress{
			a.ID: {progressRow(90, 0, 10)},
			b.ID: {progressRow(90, 0, 10)},
			c.ID: {progressRow(90, 0, 10)},
		},
		Alerts: []AlertView{
			{Level: "Warning", Message: "w", TargetUserID: b.ID},
			{Level: "Critical", Message: "c", TargetUserID: c.ID},
		},
		Now: now,
	})

	wantOrder := []string{"cat", "bob", "amy"}
	for i, want := range wantOrder {
		if s.Employees[i].Name != want {
			t.Fatalf("Employees[%d] = %q, want %q", i, s.Employees[i].Name, want)
		}
	}

	top := s.TopRisks(2)
	if len(top) != 2 || top[0].Name != "cat" {
		t.Fatalf("TopRisks(2) head = %v, want cat first", top)
	}
}
