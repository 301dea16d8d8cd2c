// internal/app/features/cases/contacts.go
package cases

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Contact type options offered on the log form.
var contactTypeOptions = []string{"in_person", "phone", "video", "text", "email", "other"}

// ServeNewContact renders the contact log form.
// GET /cases/{id}/contacts/new
func (h *Handler) ServeNewContact(w http.ResponseWriter, r *http.Request) {
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

	data := contactFormData{
		CaseID:     cs.ID.Hex(),
		CaseNumber: cs.CaseNumber,
		OccurredAt: time.Now().Format("2006-01-02"),
	}
	formutil.SetBase(&data.Base, r, "Log Contact", "/cases/"+cid.Hex()+"/view")

	templates.Render(w, r, "contact_new", data)
}

// HandleLogContact records a contact or contact attempt on the case.
// POST /cases/{id}/contacts
func (h *Handler) HandleLogContact(w http.ResponseWriter, r *http.Request) {
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

	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Volunteers log contacts only on cases they actively hold.
	if authz.IsVolunteer(r) {
		held, err := h.Assignments.HasActiveForVolunteerAndCase(ctx, uid, cid)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "assignment check failed", err, "A database error occurred.", "/cases")
			return
		}
		if !held {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return
		}
	}

	data := contactFormData{
		CaseID:       cs.ID.Hex(),
		CaseNumber:   cs.CaseNumber,
		OccurredAt:   strings.TrimSpace(r.FormValue("occurred_at")),
		ContactMade:  r.FormValue("contact_made") == "on",
		ContactTypes: r.Form["contact_types"],
		DurationMins: strings.TrimSpace(r.FormValue("duration_minutes")),
		Notes:        strings.TrimSpace(r.FormValue("notes")),
	}

	occurred, err := time.ParseInLocation("2006-01-02", data.OccurredAt, time.UTC)
	if err != nil {
		h.reRenderContact(w, r, data, "Enter the contact date as YYYY-MM-DD.")
		return
	}
	if occurred.After(time.Now().UTC()) {
		h.reRenderContact(w, r, data, "The contact date cannot be in the future.")
		return
	}

	var duration int
	if data.DurationMins != "" {
		duration, err = strconv.Atoi(data.DurationMins)
		if err != nil || duration < 0 {
			h.reRenderContact(w, r, data, "Duration must be a whole number of minutes.")
			return
		}
	}

	types := make([]string, 0, len(data.ContactTypes))
	for _, t := range data.ContactTypes {
		for _, opt := range contactTypeOptions {
			if t == opt {
				types = append(types, t)
				break
			}
		}
	}

	_, err = h.Contacts.Create(ctx, models.CaseContact{
		CaseID:         cid,
		CreatorID:      uid,
		OrganizationID: cs.OrganizationID,
		OccurredAt:     occurred,
		ContactMade:    data.ContactMade,
		ContactTypes:   types,
		DurationMins:   duration,
		Notes:          htmlsanitize.Strip(data.Notes),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "log contact failed", err, "Unable to save the contact.", "/cases")
		return
	}

	h.Log.Info("contact logged",
		zap.String("case_id", cid.Hex()),
		zap.String("creator_id", uid.Hex()),
		zap.Bool("contact_made", data.ContactMade))
	http.Redirect(w, r, "/cases/"+cid.Hex()+"/view", http.StatusSeeOther)
}

func (h *Handler) reRenderContact(w http.ResponseWriter, r *http.Request, data contactFormData, msg string) {
	formutil.SetBase(&data.Base, r, "Log Contact", "/cases/"+data.CaseID+"/view")
	data.SetError(msg)
	templates.Render(w, r, "contact_new", data)
}
