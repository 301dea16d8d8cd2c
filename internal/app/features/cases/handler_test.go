package cases_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/advocatehub/internal/app/features/cases"
	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	"github.com/dalemusser/advocatehub/internal/app/system/status"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/advocatehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*cases.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)

	h := cases.NewHandler(db, errLog, logger)
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

func volunteerAs(u models.User, orgID string) testutil.TestUser {
	return testutil.TestUser{
		ID:             u.ID.Hex(),
		Name:           u.FullName,
		Email:          u.Email,
		Role:           "volunteer",
		OrganizationID: orgID,
	}
}

func TestServeView_VolunteerWithoutAssignmentForbidden(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	req := httptest.NewRequest("GET", "/cases/"+cs.ID.Hex()+"/view", nil)
	req = testutil.WithUser(req, volunteerAs(vol, org.ID.Hex()))
	req = testutil.WithChiURLParam(req, "id", cs.ID.Hex())

	rec := testutil.NewRecorder()
	h.ServeView(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/forbidden")
}

func TestServeView_CrossOrgSupervisorForbidden(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	other := f.CreateOrganization(ctx, "Valley Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	req := httptest.NewRequest("GET", "/cases/"+cs.ID.Hex()+"/view", nil)
	req = testutil.WithUser(req, testutil.SupervisorUser(other.ID))
	req = testutil.WithChiURLParam(req, "id", cs.ID.Hex())

	rec := testutil.NewRecorder()
	h.ServeView(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/forbidden")
}

func TestHandleAssign(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	form := url.Values{"volunteerID": {vol.ID.Hex()}}
	req := postForm("/cases/"+cs.ID.Hex()+"/assign", form, testutil.SupervisorUser(org.ID), cs.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleAssign(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/cases/"+cs.ID.Hex()+"/view")

	n, err := f.DB().Collection("case_assignments").CountDocuments(ctx, bson.M{
		"volunteer_id": vol.ID,
		"case_id":      cs.ID,
		"is_active":    true,
	})
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 active assignment, got %d", n)
	}
}

func TestHandleAssign_InactiveVolunteerRejected(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateInactiveVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	form := url.Values{"volunteerID": {vol.ID.Hex()}}
	req := postForm("/cases/"+cs.ID.Hex()+"/assign", form, testutil.SupervisorUser(org.ID), cs.ID.Hex())
	rec := testutil.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		h.HandleAssign(rec.ResponseRecorder, req)
	}()

	n, err := f.DB().Collection("case_assignments").CountDocuments(ctx, bson.M{"volunteer_id": vol.ID})
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no assignments for an inactive volunteer, got %d", n)
	}
}

func TestHandleAssign_AlreadyHeldIsNoOp(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	f.CreateAssignment(ctx, vol.ID, cs.ID, org.ID, true)

	form := url.Values{"volunteerID": {vol.ID.Hex()}}
	req := postForm("/cases/"+cs.ID.Hex()+"/assign", form, testutil.SupervisorUser(org.ID), cs.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleAssign(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/cases/"+cs.ID.Hex()+"/view")

	n, err := f.DB().Collection("case_assignments").CountDocuments(ctx, bson.M{
		"volunteer_id": vol.ID,
		"case_id":      cs.ID,
	})
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if n != 1 {
		t.Errorf("expected the existing assignment only, got %d", n)
	}
}

func TestHandleLogContact(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	f.CreateAssignment(ctx, vol.ID, cs.ID, org.ID, true)

	form := url.Values{
		"occurred_at":      {time.Now().UTC().Format("2006-01-02")},
		"contact_made":     {"on"},
		"contact_types":    {"phone", "bogus"},
		"duration_minutes": {"30"},
		"notes":            {"Spoke with <b>youth</b> about school."},
	}
	req := postForm("/cases/"+cs.ID.Hex()+"/contacts", form, volunteerAs(vol, org.ID.Hex()), cs.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleLogContact(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/cases/"+cs.ID.Hex()+"/view")

	var cc models.CaseContact
	if err := f.DB().Collection("case_contacts").FindOne(ctx, bson.M{"case_id": cs.ID}).Decode(&cc); err != nil {
		t.Fatalf("reload contact: %v", err)
	}
	if !cc.ContactMade {
		t.Error("expected contact_made true")
	}
	if cc.DurationMins != 30 {
		t.Errorf("duration: got %d, want 30", cc.DurationMins)
	}
	if len(cc.ContactTypes) != 1 || cc.ContactTypes[0] != "phone" {
		t.Errorf("contact types: got %v, want [phone]", cc.ContactTypes)
	}
	if strings.Contains(cc.Notes, "<b>") {
		t.Errorf("notes were not stripped of markup: %q", cc.Notes)
	}
}

func TestHandleLogContact_UnassignedVolunteerForbidden(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	form := url.Values{
		"occurred_at": {time.Now().UTC().Format("2006-01-02")},
	}
	req := postForm("/cases/"+cs.ID.Hex()+"/contacts", form, volunteerAs(vol, org.ID.Hex()), cs.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleLogContact(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/forbidden")

	n, err := f.DB().Collection("case_contacts").CountDocuments(ctx, bson.M{"case_id": cs.ID})
	if err != nil {
		t.Fatalf("count contacts: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no contacts stored, got %d", n)
	}
}

func TestHandleLogContact_FutureDateRejected(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	vol := f.CreateVolunteer(ctx, "Pat Jones", "pat@example.com", org.ID)
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)
	f.CreateAssignment(ctx, vol.ID, cs.ID, org.ID, true)

	form := url.Values{
		"occurred_at": {time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")},
	}
	req := postForm("/cases/"+cs.ID.Hex()+"/contacts", form, volunteerAs(vol, org.ID.Hex()), cs.ID.Hex())
	rec := testutil.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		h.HandleLogContact(rec.ResponseRecorder, req)
	}()

	n, err := f.DB().Collection("case_contacts").CountDocuments(ctx, bson.M{"case_id": cs.ID})
	if err != nil {
		t.Fatalf("count contacts: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no contacts stored, got %d", n)
	}
}

func TestHandleCloseAndReopen(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "AB", org.ID)

	req := postForm("/cases/"+cs.ID.Hex()+"/close", nil, testutil.SupervisorUser(org.ID), cs.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleClose(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/cases/"+cs.ID.Hex()+"/view")

	var got models.Case
	if err := f.DB().Collection("cases").FindOne(ctx, bson.M{"_id": cs.ID}).Decode(&got); err != nil {
		t.Fatalf("reload case: %v", err)
	}
	if got.Status != status.Closed {
		t.Errorf("status after close: got %q, want %q", got.Status, status.Closed)
	}

	req = postForm("/cases/"+cs.ID.Hex()+"/reopen", nil, testutil.SupervisorUser(org.ID), cs.ID.Hex())
	rec = testutil.NewRecorder()
	h.HandleReopen(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/cases/"+cs.ID.Hex()+"/view")

	if err := f.DB().Collection("cases").FindOne(ctx, bson.M{"_id": cs.ID}).Decode(&got); err != nil {
		t.Fatalf("reload case: %v", err)
	}
	if got.Status != status.Active {
		t.Errorf("status after reopen: got %q, want %q", got.Status, status.Active)
	}
}
