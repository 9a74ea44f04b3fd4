package profile

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// Domain errors for profile operations.
var (
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
	// ErrNameIsRequired is returned when attempting to create a profile without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrOnlineFlagNotApplicable is returned when toggling availability on a customer profile.
	ErrOnlineFlagNotApplicable = errs.NewValueIsInvalidError("online flag applies only to owner and delivery profiles")
)

// Profile represents a user account extension attached to an identity issued
// by the authentication provider. It is an aggregate root holding the user's
// display name, role, last-known location, and availability flag.
//
// Profile follows these invariants:
//   - Identity matches the authentication provider's opaque id
//   - Display name is non-empty
//   - Role is one of Customer, Owner, Delivery and changes only through
//     the privileged ChangeRole operation
//   - The online flag is meaningful only for Owner and Delivery roles
//
// A profile is created exactly once per identity via the idempotent
// ensure-profile operation; it is never deleted independently of its identity.
type Profile struct {
	// id is the opaque identity shared with the authentication provider
	id kernel.UUID
	// name is the display name shown on dashboards
	name string
	// role determines which operations the profile may perform
	role Role
	// location is the last-known geographic coordinate (nil if never reported)
	location *kernel.GeoPoint
	// isOnline marks owner/delivery availability
	isOnline bool
	// createdAt is the account creation time, used as the seniority tiebreak
	// during courier auto-assignment
	createdAt time.Time
	// guard ensures the profile was properly constructed
	guard guard.ConstructorGuard
}

// NewProfile creates a Profile for a freshly registered identity.
// The profile starts offline, with no known location, and with the creation
// time set to the current UTC time.
//
// Parameters:
//   - id: The identity id issued by the authentication provider
//   - name: Display name (must be non-empty)
//   - role: Initial role assigned at signup
//
// Returns a validation error if any parameter is invalid; multiple failures
// are joined into a single error.
func NewProfile(id kernel.UUID, name string, role Role) (*Profile, error) {
	p := &Profile{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a Profile aggregate from persistent storage,
// preserving its availability flag, last-known location, and creation time.
func RestoreProfile(
	id kernel.UUID,
	name string,
	role Role,
	location *kernel.GeoPoint,
	isOnline bool,
	createdAt time.Time,
) (*Profile, error) {
	p := &Profile{
		isOnline:  isOnline,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := p.MoveTo(*location); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate ensures the Profile instance was constructed through NewProfile
// or RestoreProfile.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// IsEqual compares two profiles by their identity.
func (p *Profile) IsEqual(other *Profile) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the profile's identity.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Profile) Name() string {
	return p.name
}

// Role returns the profile's role.
func (p *Profile) Role() Role {
	return p.role
}

// Location returns the last-known coordinate, or nil if never reported.
func (p *Profile) Location() *kernel.GeoPoint {
	return p.location
}

// IsOnline reports owner/delivery availability. Always false for customers.
func (p *Profile) IsOnline() bool {
	return p.isOnline
}

// CreatedAt returns the account creation time.
func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

// MoveTo updates the profile's last-known location.
// The point must be a properly constructed coordinate.
func (p *Profile) MoveTo(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	p.location = &point
	return nil
}

// SetOnline toggles the availability flag.
// Returns ErrOnlineFlagNotApplicable for customer profiles, where the flag
// has no meaning.
func (p *Profile) SetOnline(online bool) error {
	if p.role == RoleCustomer {
		return ErrOnlineFlagNotApplicable
	}

	p.isOnline = online
	return nil
}

// ChangeRole performs the privileged role reassignment.
// Regular profile self-updates never change the role.
func (p *Profile) ChangeRole(role Role) error {
	return p.setRole(role)
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Profile) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
