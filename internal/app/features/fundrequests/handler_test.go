package fundrequests_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	"github.com/dalemusser/advocatehub/internal/app/features/fundrequests"
	"github.com/dalemusser/advocatehub/internal/app/system/mailer"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/advocatehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*fundrequests.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	m := mailer.New(mailer.Config{Host: "localhost", Port: 1025, From: "noreply@test.local", FromName: "Test"}, logger)

	h := fundrequests.NewHandler(db, errLog, m, "AdvocateHub", "http://localhost:3000", "staff@test.local", logger)
	return h, testutil.NewFixtures(t, db)
}

func submitForm(values url.Values, caseID string, user testutil.TestUser) *http.Request {
	req := httptest.NewRequest("POST", "/cases/"+caseID+"/fund_requests", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, user)
	return testutil.WithChiURLParam(req, "id", caseID)
}

func validForm() url.Values {
	return url.Values{
		"submitter_email": {"volunteer@example.com"},
		"youth_name":      {"Jordan Smith"},
		"payment_amount":  {"$150"},
		"request_purpose": {"School supplies for the fall semester"},
		"payee_name":      {"Central School Supply"},
	}
}

func TestHandleSubmit_Success(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "JS", org.ID)

	req := submitForm(validForm(), cs.ID.Hex(), testutil.VolunteerUser(org.ID))
	rec := testutil.NewRecorder()
	h.HandleSubmit(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusSeeOther)
	rec.AssertRedirect(t, "/cases/"+cs.ID.Hex()+"/view?submitted=1")

	var fr models.FundRequest
	err := f.DB().Collection("fund_requests").FindOne(ctx, bson.M{"case_id": cs.ID}).Decode(&fr)
	if err != nil {
		t.Fatalf("stored fund request not found: %v", err)
	}
	if fr.Status != models.FundRequestSubmitted {
		t.Errorf("status: got %q, want %q", fr.Status, models.FundRequestSubmitted)
	}
	if fr.Reference == "" {
		t.Error("expected a generated reference")
	}
	if fr.OrganizationID != org.ID {
		t.Error("fund request should inherit the case's organization")
	}
	if fr.PayeeName != "Central School Supply" {
		t.Errorf("payee: got %q", fr.PayeeName)
	}
}

func TestHandleSubmit_CrossOrgDenied(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	otherOrg := f.CreateOrganization(ctx, "Elsewhere Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "JS", org.ID)

	// Caller belongs to a different organization than the case.
	req := submitForm(validForm(), cs.ID.Hex(), testutil.VolunteerUser(otherOrg.ID))
	rec := testutil.NewRecorder()
	h.HandleSubmit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/cases")

	n, err := f.DB().Collection("fund_requests").CountDocuments(ctx, bson.M{"case_id": cs.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Error("cross-org submission must not store a fund request")
	}
}

func TestHandleSubmit_AdminBypassesOrgCheck(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "JS", org.ID)

	req := submitForm(validForm(), cs.ID.Hex(), testutil.AdminUser())
	rec := testutil.NewRecorder()
	h.HandleSubmit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/cases/"+cs.ID.Hex()+"/view?submitted=1")

	n, err := f.DB().Collection("fund_requests").CountDocuments(ctx, bson.M{"case_id": cs.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 stored fund request, got %d", n)
	}
}

func TestHandleSubmit_MissingRequiredField(t *testing.T) {
	h, f := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganization(ctx, "Court Advocates")
	cs := f.CreateCase(ctx, "24-JV-100", "JS", org.ID)

	form := validForm()
	form.Del("payment_amount")

	req := submitForm(form, cs.ID.Hex(), testutil.VolunteerUser(org.ID))
	rec := testutil.NewRecorder()

	// The re-render path needs the template engine, which tests do not
	// boot; the write must still be skipped.
	func() {
		defer func() { recover() }()
		h.HandleSubmit(rec.ResponseRecorder, req)
	}()

	n, err := f.DB().Collection("fund_requests").CountDocuments(ctx, bson.M{"case_id": cs.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Error("invalid submission must not store a fund request")
	}
}
