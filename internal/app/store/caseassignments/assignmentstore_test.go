package assignmentstore_test

import (
	"testing"

	assignmentstore "github.com/dalemusser/advocatehub/internal/app/store/caseassignments"
	"github.com/dalemusser/advocatehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAssignAndUnassign(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := assignmentstore.New(db)
	a, err := store.Assign(ctx, vol.ID, cs.ID, org.ID)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if !a.IsActive {
		t.Error("new assignments start active")
	}

	held, err := store.HasActiveForVolunteerAndCase(ctx, vol.ID, cs.ID)
	if err != nil {
		t.Fatalf("HasActiveForVolunteerAndCase: %v", err)
	}
	if !held {
		t.Error("expected the volunteer to hold the case")
	}

	if err := store.Unassign(ctx, a.ID); err != nil {
		t.Fatalf("Unassign: %v", err)
	}
	held, err = store.HasActiveForVolunteerAndCase(ctx, vol.ID, cs.ID)
	if err != nil {
		t.Fatalf("HasActiveForVolunteerAndCase after unassign: %v", err)
	}
	if held {
		t.Error("retired assignment still counts as held")
	}
}

func TestUnassign_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := assignmentstore.New(db)
	if err := store.Unassign(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("Unassign unknown id: got %v, want ErrNoDocuments", err)
	}
}

func TestActiveForVolunteer_ExcludesRetired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	c1 := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	c2 := f.CreateCase(ctx, "24-JV-101", "CD", org.ID)
	c3 := f.CreateCase(ctx, "24-JV-102", "EF", org.ID)
	f.CreateAssignment(ctx, vol.ID, c1.ID, org.ID, true)
	f.CreateAssignment(ctx, vol.ID, c2.ID, org.ID, true)
	f.CreateAssignment(ctx, vol.ID, c3.ID, org.ID, false)

	store := assignmentstore.New(db)
	got, err := store.ActiveForVolunteer(ctx, vol.ID)
	if err != nil {
		t.Fatalf("ActiveForVolunteer: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 active assignments, got %d", len(got))
	}
	for _, a := range got {
		if !a.IsActive {
			t.Error("retired assignment returned")
		}
	}
}

func TestActiveForCase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	ann := f.CreateVolunteer(ctx, "Ann Alpha", "ann@example.com", org.ID)
	bob := f.CreateVolunteer(ctx, "Bob Beta", "bob@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	f.CreateAssignment(ctx, ann.ID, cs.ID, org.ID, true)
	f.CreateAssignment(ctx, bob.ID, cs.ID, org.ID, false)

	store := assignmentstore.New(db)
	got, err := store.ActiveForCase(ctx, cs.ID)
	if err != nil {
		t.Fatalf("ActiveForCase: %v", err)
	}
	if len(got) != 1 || got[0].VolunteerID != ann.ID {
		t.Errorf("expected only the active assignment, got %d rows", len(got))
	}
}
