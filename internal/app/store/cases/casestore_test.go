package casestore_test

import (
	"testing"

	casestore "github.com/dalemusser/advocatehub/internal/app/store/cases"
	"github.com/dalemusser/advocatehub/internal/app/system/status"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/advocatehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_DuplicateCaseNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.EnsureUniqueIndexes(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := casestore.New(db)
	_, err := store.Create(ctx, models.Case{
		CaseNumber:     "24-jv-100", // differs only in case
		YouthInitials:  "CD",
		OrganizationID: org.ID,
	})
	if err != casestore.ErrDuplicateCaseNumber {
		t.Errorf("Create duplicate: got %v, want ErrDuplicateCaseNumber", err)
	}
}

func TestCreate_SameNumberDifferentOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	orgA := f.CreateOrganization(ctx, "Court Advocates")
	orgB := f.CreateOrganization(ctx, "Elsewhere Advocates")
	f.CreateCase(ctx, "24-JV-100", "AB", orgA.ID)

	store := casestore.New(db)
	cs, err := store.Create(ctx, models.Case{
		CaseNumber:     "24-JV-100",
		YouthInitials:  "CD",
		OrganizationID: orgB.ID,
	})
	if err != nil {
		t.Fatalf("case numbers are unique per org, create failed: %v", err)
	}
	if cs.Status != status.Active {
		t.Errorf("default status: got %q, want %q", cs.Status, status.Active)
	}
}

func TestGetByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	c1 := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	c2 := f.CreateCase(ctx, "24-JV-101", "CD", org.ID)
	f.CreateCase(ctx, "24-JV-102", "EF", org.ID)

	store := casestore.New(db)

	got, err := store.GetByIDs(ctx, []primitive.ObjectID{c1.ID, c2.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 cases, got %d", len(got))
	}

	got, err = store.GetByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("GetByIDs(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty input should yield no cases, got %d", len(got))
	}
}

func TestSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := casestore.New(db)

	if err := store.SetStatus(ctx, cs.ID, status.Closed); err != nil {
		t.Fatalf("SetStatus closed: %v", err)
	}
	got, err := store.GetByID(ctx, cs.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != status.Closed {
		t.Errorf("status: got %q, want %q", got.Status, status.Closed)
	}

	if err := store.SetStatus(ctx, cs.ID, "archived"); err == nil {
		t.Error("unknown status should be rejected")
	}
}
