package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// OrganizerRepositoryImpl implements domain.OrganizerRepository using GORM
type OrganizerRepositoryImpl struct {
	db *gorm.DB
}

// DBOrganizer represents the database model for Organizer
type DBOrganizer struct {
	UserID     uint   `gorm:"primaryKey"`
	Department string `gorm:"size:255"`
	Position   string `gorm:"size:255"`
	Bio        string
	Shifts     string `gorm:"size:255"`
	WorkDays   string `gorm:"size:255"`
	User       DBUser `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (DBOrganizer) TableName() string {
	return "organizers"
}

// profileRow is the flat scan target for the user-joined projection
type profileRow struct {
	ID         uint
	Name       string
	Email      string
	Phone      string
	Active     bool
	Department string
	Position   string
	Bio        string
	Shifts     string
	WorkDays   string
}

const profileColumns = "users.id, users.name, users.email, users.phone, users.active, " +
	"organizers.department, organizers.position, organizers.bio, organizers.shifts, organizers.work_days"

// NewOrganizerRepository creates a new organizer repository
func NewOrganizerRepository(db *gorm.DB) domain.OrganizerRepository {
	return &OrganizerRepositoryImpl{db: db}
}

// List implements domain.OrganizerRepository. Returns raw organizer
// rows without the user join.
func (r *OrganizerRepositoryImpl) List(ctx context.Context) ([]domain.Organizer, error) {
	var rows []DBOrganizer
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	organizers := make([]domain.Organizer, 0, len(rows))
	for i := range rows {
		organizers = append(organizers, *organizerToDomain(&rows[i], nil))
	}
	return organizers, nil
}

// ListProfiles implements domain.OrganizerRepository. Ordered by user
// active flag descending, then user id.
func (r *OrganizerRepositoryImpl) ListProfiles(ctx context.Context) ([]domain.OrganizerProfile, error) {
	var rows []profileRow
	err := r.db.WithContext(ctx).Table("organizers").
		Select(profileColumns).
		Joins("JOIN users ON users.id = organizers.user_id").
		Order("users.active DESC, users.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToProfiles(rows), nil
}

// FindByUserID implements domain.OrganizerRepository
func (r *OrganizerRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.Organizer, error) {
	var row DBOrganizer
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOrganizerNotFound
		}
		return nil, err
	}
	return organizerToDomain(&row, userToDomain(&row.User)), nil
}

// FindProfileByUserID implements domain.OrganizerRepository
func (r *OrganizerRepositoryImpl) FindProfileByUserID(ctx context.Context, userID uint) (*domain.OrganizerProfile, error) {
	var rows []profileRow
	err := r.db.WithContext(ctx).Table("organizers").
		Select(profileColumns).
		Joins("JOIN users ON users.id = organizers.user_id").
		Where("organizers.user_id = ?", userID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrOrganizerNotFound
	}
	profile := rowToProfile(rows[0])
	return &profile, nil
}

// Create implements domain.OrganizerRepository
func (r *OrganizerRepositoryImpl) Create(ctx context.Context, organizer *domain.Organizer) error {
	row := organizerToDB(organizer)
	return r.db.WithContext(ctx).Create(row).Error
}

// Update implements domain.OrganizerRepository. The user and organizer
// rows are written in one transaction; a vanished organizer row maps
// to ErrOrganizerNotFound.
func (r *OrganizerRepositoryImpl) Update(ctx context.Context, organizer *domain.Organizer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if organizer.User != nil {
			if err := tx.Save(userToDB(organizer.User)).Error; err != nil {
				return err
			}
		}
		res := tx.Model(&DBOrganizer{}).Where("user_id = ?", organizer.UserID).Updates(map[string]interface{}{
			"department": organizer.Department,
			"position":   organizer.Position,
			"bio":        organizer.Bio,
			"shifts":     organizer.Shifts,
			"work_days":  organizer.WorkDays,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrOrganizerNotFound
		}
		return nil
	})
}

// Search implements domain.OrganizerRepository. Only active users are
// matched; filters combine with AND.
func (r *OrganizerRepositoryImpl) Search(ctx context.Context, filter domain.OrganizerFilter) ([]domain.OrganizerProfile, error) {
	q := r.db.WithContext(ctx).Table("organizers").
		Select(profileColumns).
		Joins("JOIN users ON users.id = organizers.user_id").
		Where("users.active = ?", true)

	if filter.Name != "" {
		q = q.Where("users.name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		q = q.Where("users.email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Department != "" {
		q = q.Where("organizers.department LIKE ?", "%"+filter.Department+"%")
	}
	if filter.Position != "" {
		q = q.Where("organizers.position LIKE ?", "%"+filter.Position+"%")
	}
	if filter.Shift != "" {
		q = q.Where("organizers.shifts LIKE ?", "%"+filter.Shift+"%")
	}

	var rows []profileRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToProfiles(rows), nil
}

func organizerToDB(o *domain.Organizer) *DBOrganizer {
	return &DBOrganizer{
		UserID:     o.UserID,
		Department: o.Department,
		Position:   o.Position,
		Bio:        o.Bio,
		Shifts:     o.Shifts,
		WorkDays:   o.WorkDays,
	}
}

func organizerToDomain(row *DBOrganizer, user *domain.User) *domain.Organizer {
	return &domain.Organizer{
		UserID:     row.UserID,
		Department: row.Department,
		Position:   row.Position,
		Bio:        row.Bio,
		Shifts:     row.Shifts,
		WorkDays:   row.WorkDays,
		User:       user,
	}
}

func rowToProfile(row profileRow) domain.OrganizerProfile {
	return domain.OrganizerProfile{
		ID:         row.ID,
		Name:       row.Name,
		Email:      row.Email,
		Phone:      row.Phone,
		Active:     row.Active,
		Department: row.Department,
		Position:   row.Position,
		Bio:        row.Bio,
		Shifts:     row.Shifts,
		WorkDays:   row.WorkDays,
	}
}

func rowsToProfiles(rows []profileRow) []domain.OrganizerProfile {
	profiles := make([]domain.OrganizerProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, rowToProfile(row))
	}
	return profiles
}
