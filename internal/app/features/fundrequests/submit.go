// internal/app/features/fundrequests/submit.go
package fundrequests

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/advocatehub/internal/app/system/auth"
	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/mailer"
	"github.com/dalemusser/advocatehub/internal/app/system/normalize"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeNew renders the fund request form for a case.
// GET /cases/{id}/fund_requests/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	cid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad case id", err, "Invalid case.", "/cases")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cs, ok := h.loadCase(ctx, w, r, cid)
	if !ok {
		return
	}

	data := formData{CaseID: cs.ID.Hex(), CaseNumber: cs.CaseNumber}
	if u := currentEmail(r); u != "" {
		data.SubmitterEmail = u
	}
	formutil.SetBase(&data.Base, r, "Request Funds", "/cases/"+cid.Hex()+"/view")

	templates.Render(w, r, "fund_request_new", data)
}

// HandleSubmit validates and stores a fund request, then notifies staff
// by email and redirects back to the case.
// POST /cases/{id}/fund_requests
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	cid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad case id", err, "Invalid case.", "/cases")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/cases")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cs, ok := h.loadCase(ctx, w, r, cid)
	if !ok {
		return
	}

	data := formData{
		CaseID:             cs.ID.Hex(),
		CaseNumber:         cs.CaseNumber,
		SubmitterEmail:     normalize.Email(r.FormValue("submitter_email")),
		YouthName:          strings.TrimSpace(r.FormValue("youth_name")),
		PaymentAmount:      strings.TrimSpace(r.FormValue("payment_amount")),
		Deadline:           strings.TrimSpace(r.FormValue("deadline")),
		RequestPurpose:     strings.TrimSpace(r.FormValue("request_purpose")),
		PayeeName:          strings.TrimSpace(r.FormValue("payee_name")),
		RequestedByAndRel:  strings.TrimSpace(r.FormValue("requested_by_and_relationship")),
		OtherFundingSource: strings.TrimSpace(r.FormValue("other_funding_source")),
		Impact:             strings.TrimSpace(r.FormValue("impact")),
		ExtraInfo:          strings.TrimSpace(r.FormValue("extra_information")),
	}

	switch {
	case data.SubmitterEmail == "":
		h.reRender(w, r, data, "Your email is required.")
		return
	case data.YouthName == "":
		h.reRender(w, r, data, "The youth's name is required.")
		return
	case data.PaymentAmount == "":
		h.reRender(w, r, data, "The payment amount is required.")
		return
	case data.RequestPurpose == "":
		h.reRender(w, r, data, "The purpose of the request is required.")
		return
	case data.PayeeName == "":
		h.reRender(w, r, data, "The payee's name is required.")
		return
	}

	fr, err := h.Requests.Create(ctx, models.FundRequest{
		CaseID:             cs.ID,
		OrganizationID:     cs.OrganizationID,
		SubmitterEmail:     data.SubmitterEmail,
		YouthName:          data.YouthName,
		PaymentAmount:      data.PaymentAmount,
		Deadline:           data.Deadline,
		RequestPurpose:     data.RequestPurpose,
		PayeeName:          data.PayeeName,
		RequestedByAndRel:  data.RequestedByAndRel,
		OtherFundingSource: data.OtherFundingSource,
		Impact:             data.Impact,
		ExtraInfo:          data.ExtraInfo,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create fund request failed", err, "Unable to submit the request.", "/cases/"+cid.Hex()+"/view")
		return
	}

	email := mailer.BuildFundRequestNotice(mailer.FundRequestEmailData{
		SiteName:   h.SiteName,
		CaseNumber: cs.CaseNumber,
		CaseURL:    h.BaseURL + "/cases/" + cs.ID.Hex() + "/view",
		Request:    fr,
	})
	email.To = h.NotifyTo
	h.Mailer.SendAsync(email)

	h.Log.Info("fund request submitted",
		zap.String("case_id", cid.Hex()),
		zap.String("reference", fr.Reference))
	http.Redirect(w, r, "/cases/"+cid.Hex()+"/view?submitted=1", http.StatusSeeOther)
}

func (h *Handler) reRender(w http.ResponseWriter, r *http.Request, data formData, msg string) {
	formutil.SetBase(&data.Base, r, "Request Funds", "/cases/"+data.CaseID+"/view")
	data.SetError(msg)
	templates.Render(w, r, "fund_request_new", data)
}

// loadCase fetches the case and denies with a redirect when the caller's
// organization does not match the case's.
func (h *Handler) loadCase(ctx context.Context, w http.ResponseWriter, r *http.Request, cid primitive.ObjectID) (models.Case, bool) {
	cs, err := h.Cases.GetByID(ctx, cid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "case not found", err, "Case not found.", "/cases")
		return models.Case{}, false
	}

	if !authz.IsAdmin(r) {
		orgID, ok := authz.OrgCtx(r)
		if !ok || cs.OrganizationID != orgID {
			http.Redirect(w, r, "/cases", http.StatusSeeOther)
			return models.Case{}, false
		}
	}

	return cs, true
}

// currentEmail returns the signed-in user's email, if any, to prefill
// the submitter field.
func currentEmail(r *http.Request) string {
	if u, ok := auth.CurrentUser(r); ok {
		return u.Email
	}
	return ""
}
