package fundrequeststore_test

import (
	"testing"

	fundrequeststore "github.com/dalemusser/advocatehub/internal/app/store/fundrequests"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/advocatehub/internal/testutil"
)

func TestCreate_AssignsReferenceAndStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := fundrequeststore.New(db)
	fr, err := store.Create(ctx, models.FundRequest{
		CaseID:         cs.ID,
		OrganizationID: org.ID,
		SubmitterEmail: "vol@example.com",
		YouthName:      "Jordan Smith",
		PaymentAmount:  "$80",
		RequestPurpose: "Winter coat",
		PayeeName:      "Outfitters Inc",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fr.Reference == "" {
		t.Error("expected a generated reference")
	}
	if fr.Status != models.FundRequestSubmitted {
		t.Errorf("status: got %q, want %q", fr.Status, models.FundRequestSubmitted)
	}

	second, err := store.Create(ctx, models.FundRequest{
		CaseID:         cs.ID,
		OrganizationID: org.ID,
		SubmitterEmail: "vol@example.com",
		YouthName:      "Jordan Smith",
		PaymentAmount:  "$20",
		RequestPurpose: "Bus pass",
		PayeeName:      "Transit Authority",
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if second.Reference == fr.Reference {
		t.Error("references must be unique per request")
	}
}

func TestListForCase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	c1 := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	c2 := f.CreateCase(ctx, "24-JV-101", "CD", org.ID)

	store := fundrequeststore.New(db)
	base := models.FundRequest{
		OrganizationID: org.ID,
		SubmitterEmail: "vol@example.com",
		YouthName:      "Jordan Smith",
		PaymentAmount:  "$10",
		RequestPurpose: "Supplies",
		PayeeName:      "Store",
	}

	fr := base
	fr.CaseID = c1.ID
	if _, err := store.Create(ctx, fr); err != nil {
		t.Fatalf("Create: %v", err)
	}
	fr = base
	fr.CaseID = c1.ID
	if _, err := store.Create(ctx, fr); err != nil {
		t.Fatalf("Create: %v", err)
	}
	fr = base
	fr.CaseID = c2.ID
	if _, err := store.Create(ctx, fr); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.ListForCase(ctx, c1.ID)
	if err != nil {
		t.Fatalf("ListForCase: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 requests for case, got %d", len(got))
	}
}

func TestSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	org := f.CreateOrganization(ctx, "Court Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	store := fundrequeststore.New(db)
	fr, err := store.Create(ctx, models.FundRequest{
		CaseID:         cs.ID,
		OrganizationID: org.ID,
		SubmitterEmail: "vol@example.com",
		YouthName:      "Jordan Smith",
		PaymentAmount:  "$10",
		RequestPurpose: "Supplies",
		PayeeName:      "Store",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.SetStatus(ctx, fr.ID, models.FundRequestApproved); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, err := store.GetByID(ctx, fr.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.FundRequestApproved {
		t.Errorf("status: got %q, want %q", got.Status, models.FundRequestApproved)
	}
}
