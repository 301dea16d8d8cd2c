package organizationstore_test

import (
	"testing"

	organizationstore "github.com/dalemusser/advocatehub/internal/app/store/organizations"
	"github.com/dalemusser/advocatehub/internal/app/system/status"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/advocatehub/internal/testutil"
)

func TestCreate_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.EnsureUniqueIndexes(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := organizationstore.New(db)
	_, err := store.Create(ctx, models.Organization{Name: "Court Advocates"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = store.Create(ctx, models.Organization{Name: "court advocates"})
	if err != organizationstore.ErrDuplicateOrganization {
		t.Errorf("Create duplicate: got %v, want ErrDuplicateOrganization", err)
	}
}

func TestListActive_ExcludesDisabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := organizationstore.New(db)
	a, err := store.Create(ctx, models.Organization{Name: "Valley Advocates"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := store.Create(ctx, models.Organization{Name: "Court Advocates"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Update(ctx, a.ID, models.Organization{Status: status.Disabled}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 active organization, got %d", len(got))
	}
	if got[0].Name != "Court Advocates" {
		t.Errorf("unexpected organization: %q", got[0].Name)
	}
}

func TestUpdate_LeavesUnsetFieldsAlone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := organizationstore.New(db)
	org, err := store.Create(ctx, models.Organization{
		Name:  "Court Advocates",
		City:  "Springfield",
		State: "MO",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Update(ctx, org.ID, models.Organization{City: "Columbia"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.City != "Columbia" {
		t.Errorf("city: got %q, want Columbia", got.City)
	}
	if got.Name != "Court Advocates" || got.State != "MO" {
		t.Errorf("untouched fields changed: name=%q state=%q", got.Name, got.State)
	}
}
