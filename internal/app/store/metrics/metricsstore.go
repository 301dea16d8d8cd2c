// internal/app/store/metrics/metricsstore.go

// Package metricsstore holds read-only aggregate counts for dashboards.
// Failures degrade to zero counts rather than failing the page.
package metricsstore

import (
	"context"

	"github.com/dalemusser/advocatehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardCounts holds the headline numbers for the admin dashboard.
type DashboardCounts struct {
	Organizations int64
	Supervisors   int64
	Volunteers    int64
	Cases         int64
	FundRequests  int64
}

// FetchDashboardCounts gathers site-wide counts. Individual count failures
// leave that field at zero.
func FetchDashboardCounts(ctx context.Context, db *mongo.Database) DashboardCounts {
	var c DashboardCounts
	c.Organizations, _ = db.Collection("organizations").CountDocuments(ctx, bson.M{"status": "active"})
	c.Supervisors, _ = db.Collection("users").CountDocuments(ctx, bson.M{"role": models.RoleSupervisor})
	c.Volunteers, _ = db.Collection("users").CountDocuments(ctx, bson.M{"role": models.RoleVolunteer})
	c.Cases, _ = db.Collection("cases").CountDocuments(ctx, bson.M{"status": "active"})
	c.FundRequests, _ = db.Collection("fund_requests").CountDocuments(ctx, bson.M{"status": models.FundRequestSubmitted})
	return c
}

// OrgCounts holds the headline numbers for a supervisor's organization.
type OrgCounts struct {
	Volunteers   int64
	Cases        int64
	FundRequests int64
}

// FetchOrgCounts gathers per-organization counts for the supervisor dashboard.
func FetchOrgCounts(ctx context.Context, db *mongo.Database, orgID primitive.ObjectID) OrgCounts {
	var c OrgCounts
	c.Volunteers, _ = db.Collection("users").CountDocuments(ctx,
		bson.M{"organization_id": orgID, "role": models.RoleVolunteer})
	c.Cases, _ = db.Collection("cases").CountDocuments(ctx,
		bson.M{"organization_id": orgID, "status": "active"})
	c.FundRequests, _ = db.Collection("fund_requests").CountDocuments(ctx,
		bson.M{"organization_id": orgID, "status": models.FundRequestSubmitted})
	return c
}
