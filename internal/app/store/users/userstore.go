// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/advocatehub/internal/app/system/normalize"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "admin"|"supervisor"|"volunteer"`)
	errOrgNeeded      = errors.New("supervisor/volunteer must have organization_id")
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetVolunteerByID loads a user by ObjectID, returning an error if the user
// does not exist or is not a volunteer role.
func (s *Store) GetVolunteerByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "role": models.RoleVolunteer}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetSupervisorByID loads a user by ObjectID, returning an error if the user
// does not exist or is not a supervisor role.
func (s *Store) GetSupervisorByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "role": models.RoleSupervisor}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing & validating fields.
// FullName is trimmed only; its content is stored verbatim, with the folded
// copy kept separately for search/sort. New users start active.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	// FullName is stored byte for byte as given; any trimming happens in
	// the form layer. Only the folded lookup key is derived.
	u.FullNameCI = text.Fold(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	u.Active = true

	switch u.Role {
	case models.RoleAdmin, models.RoleSupervisor, models.RoleVolunteer:
		// ok
	default:
		return models.User{}, errBadRole
	}

	// Supervisors/volunteers must be scoped to an org
	if (u.Role == models.RoleSupervisor || u.Role == models.RoleVolunteer) && u.OrganizationID == nil {
		return models.User{}, errOrgNeeded
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Update holds the fields that can be edited for a user.
type Update struct {
	FullName string
	Email    string
}

// UpdateProfile modifies the editable fields of a user record.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FullName != "" {
		set["full_name"] = upd.FullName
		set["full_name_ci"] = text.Fold(upd.FullName)
	}
	if email := normalize.Email(upd.Email); email != "" {
		set["email"] = email
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetPassword hashes and stores the user's password.
func (s *Store) SetPassword(ctx context.Context, id primitive.ObjectID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_hash": string(hash),
		"updated_at":    time.Now().UTC(),
	}})
	return err
}

// CheckPassword verifies a password against the stored hash.
func (s *Store) CheckPassword(u *models.User, password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ListByOrgAndRole returns users of a role within an organization, sorted by
// folded name, fetching limit+1 rows after the optional name cursor.
func (s *Store) ListByOrgAndRole(ctx context.Context, orgID primitive.ObjectID, role string, afterNameCI string, limit int64) ([]models.User, error) {
	filter := bson.M{"organization_id": orgID, "role": normalize.Role(role)}
	if afterNameCI != "" {
		filter["full_name_ci"] = bson.M{"$gt": afterNameCI}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "full_name_ci", Value: 1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CountByOrgAndRole counts users of a role within an organization.
func (s *Store) CountByOrgAndRole(ctx context.Context, orgID primitive.ObjectID, role string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"organization_id": orgID, "role": normalize.Role(role)})
}

// ListByRole is the site-wide variant of ListByOrgAndRole, used by admin
// screens that are not scoped to one organization.
func (s *Store) ListByRole(ctx context.Context, role string, afterNameCI string, limit int64) ([]models.User, error) {
	filter := bson.M{"role": normalize.Role(role)}
	if afterNameCI != "" {
		filter["full_name_ci"] = bson.M{"$gt": afterNameCI}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "full_name_ci", Value: 1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
