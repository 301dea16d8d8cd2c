package contactstore_test

import (
	"testing"
	"time"

	contactstore "github.com/dalemusser/advocatehub/internal/app/store/casecontacts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/advocatehub/internal/testutil"
)

func TestCreate_SetsTimestamps(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Ann Volunteer", "ann@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := contactstore.New(db)
	cc, err := store.Create(ctx, models.CaseContact{
		CaseID:         cs.ID,
		CreatorID:      vol.ID,
		OrganizationID: org.ID,
		ContactMade:    true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cc.CreatedAt.IsZero() || cc.UpdatedAt.IsZero() {
		t.Error("expected created_at and updated_at to be stamped")
	}
	if cc.OccurredAt.IsZero() {
		t.Error("expected occurred_at to default to now")
	}
}

func TestExistsForCreatorAndCaseSince(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Ann Volunteer", "ann@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := contactstore.New(db)
	cutoff := time.Now().UTC().AddDate(0, 0, -14)

	got, err := store.ExistsForCreatorAndCaseSince(ctx, vol.ID, cs.ID, cutoff)
	if err != nil {
		t.Fatalf("ExistsForCreatorAndCaseSince: %v", err)
	}
	if got {
		t.Error("expected false with no contacts logged")
	}

	// An old entry before the cutoff does not count.
	f.CreateContact(ctx, vol.ID, cs.ID, org.ID, time.Now().UTC().AddDate(0, 0, -20), true)
	got, err = store.ExistsForCreatorAndCaseSince(ctx, vol.ID, cs.ID, cutoff)
	if err != nil {
		t.Fatalf("ExistsForCreatorAndCaseSince: %v", err)
	}
	if got {
		t.Error("expected false when the only entry predates the cutoff")
	}

	// A future-dated entry sits outside the window too.
	f.CreateContact(ctx, vol.ID, cs.ID, org.ID, time.Now().UTC().AddDate(0, 0, 5), true)
	got, err = store.ExistsForCreatorAndCaseSince(ctx, vol.ID, cs.ID, cutoff)
	if err != nil {
		t.Fatalf("ExistsForCreatorAndCaseSince: %v", err)
	}
	if got {
		t.Error("expected false when the only other entry is future dated")
	}

	// An attempt inside the window counts even when contact was not made.
	f.CreateContact(ctx, vol.ID, cs.ID, org.ID, time.Now().UTC().AddDate(0, 0, -3), false)
	got, err = store.ExistsForCreatorAndCaseSince(ctx, vol.ID, cs.ID, cutoff)
	if err != nil {
		t.Fatalf("ExistsForCreatorAndCaseSince: %v", err)
	}
	if !got {
		t.Error("expected true for an attempt inside the window")
	}
}

func TestExistsMadeForCreatorAndCaseSince(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Ann Volunteer", "ann@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := contactstore.New(db)
	cutoff := time.Now().UTC().AddDate(0, 0, -14)

	// Attempts without contact made do not satisfy the strict check.
	f.CreateContact(ctx, vol.ID, cs.ID, org.ID, time.Now().UTC().AddDate(0, 0, -2), false)
	got, err := store.ExistsMadeForCreatorAndCaseSince(ctx, vol.ID, cs.ID, cutoff)
	if err != nil {
		t.Fatalf("ExistsMadeForCreatorAndCaseSince: %v", err)
	}
	if got {
		t.Error("expected false when contact was never made")
	}

	f.CreateContact(ctx, vol.ID, cs.ID, org.ID, time.Now().UTC().AddDate(0, 0, -1), true)
	got, err = store.ExistsMadeForCreatorAndCaseSince(ctx, vol.ID, cs.ID, cutoff)
	if err != nil {
		t.Fatalf("ExistsMadeForCreatorAndCaseSince: %v", err)
	}
	if !got {
		t.Error("expected true once contact was made inside the window")
	}
}

func TestExists_ScopedToCreatorAndCase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	ann := f.CreateVolunteer(ctx, "Ann Volunteer", "ann@example.com", org.ID)
	bob := f.CreateVolunteer(ctx, "Bob Volunteer", "bob@example.com", org.ID)
	c1 := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	c2 := f.CreateCase(ctx, "24-JV-101", "CD", org.ID)

	store := contactstore.New(db)
	cutoff := time.Now().UTC().AddDate(0, 0, -14)

	f.CreateContact(ctx, bob.ID, c1.ID, org.ID, time.Now().UTC(), true)
	f.CreateContact(ctx, ann.ID, c2.ID, org.ID, time.Now().UTC(), true)

	got, err := store.ExistsForCreatorAndCaseSince(ctx, ann.ID, c1.ID, cutoff)
	if err != nil {
		t.Fatalf("ExistsForCreatorAndCaseSince: %v", err)
	}
	if got {
		t.Error("another volunteer's entry must not count for this creator")
	}
}

func TestListForCase_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Ann Volunteer", "ann@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := contactstore.New(db)
	older := time.Now().UTC().AddDate(0, 0, -5)
	newer := time.Now().UTC().AddDate(0, 0, -1)
	f.CreateContact(ctx, vol.ID, cs.ID, org.ID, older, true)
	f.CreateContact(ctx, vol.ID, cs.ID, org.ID, newer, false)

	rows, err := store.ListForCase(ctx, cs.ID)
	if err != nil {
		t.Fatalf("ListForCase: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(rows))
	}
	if !rows[0].OccurredAt.After(rows[1].OccurredAt) {
		t.Error("expected newest contact first")
	}
}
