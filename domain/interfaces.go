package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	Deactivate(ctx context.Context, id uint) error
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
}

// ActivityRepository defines activity data access operations
type ActivityRepository interface {
	List(ctx context.Context) ([]Activity, error)
	FindByID(ctx context.Context, id uint) (*Activity, error)
	Create(ctx context.Context, activity *Activity) error
	Update(ctx context.Context, activity *Activity) error
	Deactivate(ctx context.Context, id uint) error
	FindPublicByID(ctx context.Context, id uint) (*ActivityPublicView, error)
	Search(ctx context.Context, filter ActivityFilter) ([]ActivityPublicView, error)
}

// CategoryRepository defines category data access operations
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Deactivate(ctx context.Context, id uint) error
	Search(ctx context.Context, name string) ([]Category, error)
	// NameExists is the exact-match probe used on create.
	NameExists(ctx context.Context, name string) (bool, error)
	// NameTaken is the case-insensitive probe used on update.
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
}

// OrganizerRepository defines organizer data access operations
type OrganizerRepository interface {
	List(ctx context.Context) ([]Organizer, error)
	ListProfiles(ctx context.Context) ([]OrganizerProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*Organizer, error)
	FindProfileByUserID(ctx context.Context, userID uint) (*OrganizerProfile, error)
	Create(ctx context.Context, organizer *Organizer) error
	Update(ctx context.Context, organizer *Organizer) error
	Search(ctx context.Context, filter OrganizerFilter) ([]OrganizerProfile, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}

// ActivityService defines activity business logic
type ActivityService interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, id uint) (*Activity, error)
	Create(ctx context.Context, activity *Activity) error
	Update(ctx context.Context, id uint, activity *Activity) error
	Deactivate(ctx context.Context, id uint) error
	GetPublic(ctx context.Context, id uint) (*ActivityPublicView, error)
	Search(ctx context.Context, filter ActivityFilter) ([]ActivityPublicView, error)
}

// CategoryService defines category business logic
type CategoryService interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uint) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, id uint, category *Category) error
	Deactivate(ctx context.Context, id uint) error
	Search(ctx context.Context, name string) ([]Category, error)
}

// OrganizerService defines organizer business logic
type OrganizerService interface {
	List(ctx context.Context) ([]Organizer, error)
	ListProfiles(ctx context.Context) ([]OrganizerProfile, error)
	Get(ctx context.Context, userID uint) (*OrganizerProfile, error)
	Create(ctx context.Context, req OrganizerCreate) (defaultPassword string, err error)
	Update(ctx context.Context, userID uint, patch OrganizerPatch) error
	Deactivate(ctx context.Context, userID uint) error
	Search(ctx context.Context, filter OrganizerFilter) ([]OrganizerProfile, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(user *User) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// LoginRateLimiter bounds authentication attempts per key. It must
// fail open: an unreachable backend never blocks logins.
type LoginRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer is the subset of the Casbin enforcer the service uses
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
