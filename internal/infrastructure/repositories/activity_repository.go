package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// ActivityRepositoryImpl implements domain.ActivityRepository using GORM
type ActivityRepositoryImpl struct {
	db *gorm.DB
}

// DBActivity represents the database model for Activity. Date is
// YYYY-MM-DD and the time columns are HH:MM.
type DBActivity struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255"`
	Date        string `gorm:"size:10;index"`
	StartTime   string `gorm:"size:5"`
	EndTime     string `gorm:"size:5"`
	Location    string `gorm:"size:255"`
	Capacity    int
	CategoryID  uint `gorm:"index"`
	OrganizerID uint `gorm:"index"`
	Active      bool `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBActivity) TableName() string {
	return "activities"
}

// publicRow is the flat scan target for the public projection
type publicRow struct {
	ID            uint
	Title         string
	Date          string
	StartTime     string
	EndTime       string
	Location      string
	Capacity      int
	CategoryID    uint
	CategoryName  string
	OrganizerID   uint
	OrganizerName string
}

const publicColumns = "activities.id, activities.title, activities.date, activities.start_time, " +
	"activities.end_time, activities.location, activities.capacity, " +
	"categories.id AS category_id, categories.name AS category_name, " +
	"users.id AS organizer_id, users.name AS organizer_name"

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) domain.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// List implements domain.ActivityRepository. Returns every row,
// inactive included.
func (r *ActivityRepositoryImpl) List(ctx context.Context) ([]domain.Activity, error) {
	var rows []DBActivity
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, activityToDomain(row))
	}
	return activities, nil
}

// FindByID implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Activity, error) {
	var row DBActivity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	activity := activityToDomain(row)
	return &activity, nil
}

// Create implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *domain.Activity) error {
	row := activityToDB(activity)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	activity.ID = row.ID
	return nil
}

// Update implements domain.ActivityRepository. Writes the full row; a
// vanished record surfaces as ErrActivityNotFound.
func (r *ActivityRepositoryImpl) Update(ctx context.Context, activity *domain.Activity) error {
	res := r.db.WithContext(ctx).Model(&DBActivity{}).Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"title":        activity.Title,
			"date":         activity.Date,
			"start_time":   activity.StartTime,
			"end_time":     activity.EndTime,
			"location":     activity.Location,
			"capacity":     activity.Capacity,
			"category_id":  activity.CategoryID,
			"organizer_id": activity.OrganizerID,
			"active":       activity.Active,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// Deactivate implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&DBActivity{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// FindPublicByID implements domain.ActivityRepository. Active
// activities only, with category and organizer reduced to refs.
func (r *ActivityRepositoryImpl) FindPublicByID(ctx context.Context, id uint) (*domain.ActivityPublicView, error) {
	var rows []publicRow
	err := r.publicQuery(ctx).
		Where("activities.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrActivityNotFound
	}
	view := rowToPublicView(rows[0])
	return &view, nil
}

// Search implements domain.ActivityRepository
func (r *ActivityRepositoryImpl) Search(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityPublicView, error) {
	q := r.publicQuery(ctx)

	if filter.Title != "" {
		q = q.Where("activities.title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.CategoryID != nil {
		q = q.Where("activities.category_id = ?", *filter.CategoryID)
	}
	if filter.OrganizerID != nil {
		q = q.Where("activities.organizer_id = ?", *filter.OrganizerID)
	}
	if filter.Location != "" {
		q = q.Where("activities.location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Date != "" {
		q = q.Where("activities.date = ?", filter.Date)
	}

	var rows []publicRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]domain.ActivityPublicView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowToPublicView(row))
	}
	return views, nil
}

func (r *ActivityRepositoryImpl) publicQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("activities").
		Select(publicColumns).
		Joins("JOIN categories ON categories.id = activities.category_id").
		Joins("JOIN users ON users.id = activities.organizer_id").
		Where("activities.active = ?", true)
}

func activityToDB(a *domain.Activity) *DBActivity {
	return &DBActivity{
		ID:          a.ID,
		Title:       a.Title,
		Date:        a.Date,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Location:    a.Location,
		Capacity:    a.Capacity,
		CategoryID:  a.CategoryID,
		OrganizerID: a.OrganizerID,
		Active:      a.Active,
	}
}

func activityToDomain(row DBActivity) domain.Activity {
	return domain.Activity{
		ID:          row.ID,
		Title:       row.Title,
		Date:        row.Date,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		Location:    row.Location,
		Capacity:    row.Capacity,
		CategoryID:  row.CategoryID,
		OrganizerID: row.OrganizerID,
		Active:      row.Active,
	}
}

func rowToPublicView(row publicRow) domain.ActivityPublicView {
	return domain.ActivityPublicView{
		ID:        row.ID,
		Title:     row.Title,
		Date:      row.Date,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Location:  row.Location,
		Capacity:  row.Capacity,
		Category:  domain.NamedRef{ID: row.CategoryID, Name: row.CategoryName},
		Organizer: domain.NamedRef{ID: row.OrganizerID, Name: row.OrganizerName},
	}
}
