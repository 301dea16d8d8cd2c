package volunteers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	"github.com/dalemusser/advocatehub/internal/app/features/volunteers"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/advocatehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*volunteers.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)

	h := volunteers.NewHandler(db.Client(), db, errLog, 14, logger)
	return h, testutil.NewFixtures(t, db)
}

func postForm(target string, values url.Values, user testutil.TestUser, idParam string) *http.Request {
	var body *strings.Reader
	if values != nil {
		body = strings.NewReader(values.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest("POST", target, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, user)
	return testutil.WithChiURLParam(req, "id", idParam)
}

func TestHandleDeactivate_CascadesAssignments(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	f.CreateAssignment(ctx, vol.ID, cs.ID, org.ID, true)

	req := postForm("/volunteers/"+vol.ID.Hex()+"/deactivate", nil, testutil.SupervisorUser(org.ID), vol.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDeactivate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/volunteers/"+vol.ID.Hex()+"/view")

	var u models.User
	if err := f.DB().Collection("users").FindOne(ctx, bson.M{"_id": vol.ID}).Decode(&u); err != nil {
		t.Fatalf("reload volunteer: %v", err)
	}
	if u.Active {
		t.Error("volunteer should be inactive")
	}

	n, err := f.DB().Collection("case_assignments").CountDocuments(ctx, bson.M{
		"volunteer_id": vol.ID, "is_active": true,
	})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected retired assignments, got %d active", n)
	}
}

func TestHandleDeactivate_CrossOrgForbidden(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	otherOrg := f.CreateOrganization(ctx, "Elsewhere Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)

	req := postForm("/volunteers/"+vol.ID.Hex()+"/deactivate", nil, testutil.SupervisorUser(otherOrg.ID), vol.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDeactivate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/forbidden")

	var u models.User
	if err := f.DB().Collection("users").FindOne(ctx, bson.M{"_id": vol.ID}).Decode(&u); err != nil {
		t.Fatalf("reload volunteer: %v", err)
	}
	if !u.Active {
		t.Error("cross-org deactivate must not change the volunteer")
	}
}

func TestHandleActivate(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateInactiveVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)

	req := postForm("/volunteers/"+vol.ID.Hex()+"/activate", nil, testutil.AdminUser(), vol.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleActivate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/volunteers/"+vol.ID.Hex()+"/view")

	var u models.User
	if err := f.DB().Collection("users").FindOne(ctx, bson.M{"_id": vol.ID}).Decode(&u); err != nil {
		t.Fatalf("reload volunteer: %v", err)
	}
	if !u.Active {
		t.Error("volunteer should be active")
	}
}

func TestHandleAssignSupervisor(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	sup := f.CreateSupervisor(ctx, "Sam Lee", "sam@example.com", org.ID)
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)

	form := url.Values{"supervisorID": {sup.ID.Hex()}}
	req := postForm("/volunteers/"+vol.ID.Hex()+"/supervisor", form, testutil.SupervisorUser(org.ID), vol.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleAssignSupervisor(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/volunteers/"+vol.ID.Hex()+"/view")

	var link models.SupervisorVolunteer
	err := f.DB().Collection("supervisor_volunteers").FindOne(ctx, bson.M{
		"volunteer_id": vol.ID, "is_active": true,
	}).Decode(&link)
	if err != nil {
		t.Fatalf("supervision record not found: %v", err)
	}
	if link.SupervisorID != sup.ID {
		t.Error("wrong supervisor recorded")
	}
}

func TestHandleAssignSupervisor_Supersedes(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	supOld := f.CreateSupervisor(ctx, "Old Super", "old@example.com", org.ID)
	supNew := f.CreateSupervisor(ctx, "New Super", "new@example.com", org.ID)
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	f.CreateSupervision(ctx, supOld.ID, vol.ID, org.ID, true, time.Now().UTC().Add(-time.Hour))

	form := url.Values{"supervisorID": {supNew.ID.Hex()}}
	req := postForm("/volunteers/"+vol.ID.Hex()+"/supervisor", form, testutil.AdminUser(), vol.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleAssignSupervisor(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusSeeOther)

	n, err := f.DB().Collection("supervisor_volunteers").CountDocuments(ctx, bson.M{
		"volunteer_id": vol.ID, "is_active": true,
	})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly one active supervision record, got %d", n)
	}

	var link models.SupervisorVolunteer
	err = f.DB().Collection("supervisor_volunteers").FindOne(ctx, bson.M{
		"volunteer_id": vol.ID, "is_active": true,
	}).Decode(&link)
	if err != nil {
		t.Fatalf("reload supervision: %v", err)
	}
	if link.SupervisorID != supNew.ID {
		t.Error("new supervisor should supersede the old one")
	}
}

func TestHandleRemoveSupervisor(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	sup := f.CreateSupervisor(ctx, "Sam Lee", "sam@example.com", org.ID)
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	f.CreateSupervision(ctx, sup.ID, vol.ID, org.ID, true, time.Now().UTC())

	req := postForm("/volunteers/"+vol.ID.Hex()+"/supervisor/remove", nil, testutil.SupervisorUser(org.ID), vol.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleRemoveSupervisor(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/volunteers/"+vol.ID.Hex()+"/view")

	n, err := f.DB().Collection("supervisor_volunteers").CountDocuments(ctx, bson.M{
		"volunteer_id": vol.ID, "is_active": true,
	})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Error("supervision record should be retired")
	}
}

func TestHandleRemoveSupervisor_NoneAssigned(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)

	req := postForm("/volunteers/"+vol.ID.Hex()+"/supervisor/remove", nil, testutil.AdminUser(), vol.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleRemoveSupervisor(rec.ResponseRecorder, req)

	// Removing a supervisor that is not there is a no-op, not an error.
	rec.AssertRedirect(t, "/volunteers/"+vol.ID.Hex()+"/view")
}
