package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// TripModel represents the database model for trips
type TripModel struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             uint   `gorm:"index;not null"`
	Title              string `gorm:"size:200"`
	DestinationCity    string `gorm:"size:100;not null"`
	DestinationCountry string `gorm:"size:100;not null"`
	Latitude           *float64
	Longitude          *float64
	Duration           int        `gorm:"not null"`
	BudgetAmount       float64    `gorm:"not null"`
	BudgetCurrency     string     `gorm:"size:10"`
	Interests          string     `gorm:"type:text"`
	TravelStyle        string     `gorm:"size:20"`
	ItineraryData      *string    `gorm:"type:text"`
	AIGenerated        bool       `gorm:"not null"`
	GenerationModel    string     `gorm:"size:50"`
	StartDate          *time.Time `gorm:"index"`
	EndDate            *time.Time `gorm:"index"`
	Status             string     `gorm:"size:20;index;not null"`
	IsPublic           bool       `gorm:"not null"`
	IsFavorite         bool       `gorm:"not null"`
	Notes              string     `gorm:"type:text"`
	Tags               string     `gorm:"type:text"`
	WeatherData        *string    `gorm:"type:text"`
	CreatedAt          time.Time  `gorm:"index"`
	UpdatedAt          time.Time
}

func (TripModel) TableName() string {
	return "trips"
}

// TripRepositoryAdapter implements the TripRepository port using GORM
type TripRepositoryAdapter struct {
	db *gorm.DB
}

// NewTripRepositoryAdapter creates a new trip repository adapter
func NewTripRepositoryAdapter(db *gorm.DB) ports.TripRepository {
	return &TripRepositoryAdapter{db: db}
}

// Save persists a new trip and fills in its ID and timestamps
func (r *TripRepositoryAdapter) Save(ctx context.Context, trip *ports.TripData) error {
	if trip == nil {
		return errors.NewValidationError("trip cannot be nil")
	}
	if trip.UserID == 0 {
		return errors.NewValidationError("trip owner cannot be zero")
	}

	model := r.dataToModel(trip)
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("failed to save trip", result.Error)
	}

	trip.ID = model.ID
	trip.CreatedAt = model.CreatedAt
	trip.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByIDAndUser retrieves a trip only if userID owns it
func (r *TripRepositoryAdapter) FindByIDAndUser(ctx context.Context, id, userID uint) (*ports.TripData, error) {
	model, err := r.findOwned(r.db.WithContext(ctx), id, userID)
	if err != nil {
		return nil, err
	}
	return r.modelToData(model), nil
}

// Update writes every field of an existing trip
func (r *TripRepositoryAdapter) Update(ctx context.Context, trip *ports.TripData) error {
	if trip == nil {
		return errors.NewValidationError("trip cannot be nil")
	}
	if trip.ID == 0 {
		return errors.NewValidationError("trip ID cannot be zero for update")
	}

	model := r.dataToModel(trip)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ?", trip.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update trip", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("trip not found")
	}

	trip.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete removes a trip owned by userID
func (r *TripRepositoryAdapter) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&TripModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete trip", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("trip not found")
	}
	return nil
}

// List returns one page of the owner's trips plus the unpaged total
func (r *TripRepositoryAdapter) List(ctx context.Context, params ports.TripListParams) (*ports.TripPage, error) {
	if params.UserID == 0 {
		return nil, errors.NewValidationError("trip owner cannot be zero")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < 1 {
		params.PerPage = 10
	}

	query := r.db.WithContext(ctx).Model(&TripModel{}).Where("user_id = ?", params.UserID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		term := "%" + params.Search + "%"
		query = query.Where("title LIKE ? OR destination_city LIKE ? OR destination_country LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to count trips", err)
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}

	var models []TripModel
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortBy}, Desc: params.SortOrder != "asc"}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: params.SortOrder != "asc"}).
		Offset((params.Page - 1) * params.PerPage).
		Limit(params.PerPage).
		Find(&models).Error
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list trips", err)
	}

	trips := make([]*ports.TripData, len(models))
	for i := range models {
		trips[i] = r.modelToData(&models[i])
	}

	return &ports.TripPage{Trips: trips, Total: total}, nil
}

// SaveGeneratedContent commits itinerary, optional weather and generation flags atomically
func (r *TripRepositoryAdapter) SaveGeneratedContent(ctx context.Context, id, userID uint, content ports.GeneratedContent) (*ports.TripData, error) {
	var saved *TripModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := r.findOwned(tx, id, userID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"itinerary_data":   encodeBlob(content.ItineraryData),
			"ai_generated":     true,
			"generation_model": content.GenerationModel,
		}
		if content.Status != "" {
			updates["status"] = content.Status
		}
		if content.WeatherData != nil {
			updates["weather_data"] = encodeBlob(content.WeatherData)
		}

		if err := tx.Model(model).Updates(updates).Error; err != nil {
			return errors.NewDatabaseError("failed to store generated itinerary", err)
		}

		reloaded, err := r.findOwned(tx, id, userID)
		if err != nil {
			return err
		}
		saved = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.modelToData(saved), nil
}

func (r *TripRepositoryAdapter) findOwned(db *gorm.DB, id, userID uint) (*TripModel, error) {
	if id == 0 {
		return nil, errors.NewValidationError("trip ID cannot be zero")
	}

	var model TripModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("trip not found")
		}
		return nil, errors.NewDatabaseError("failed to find trip", result.Error)
	}
	return &model, nil
}

// dataToModel converts port data to database model
func (r *TripRepositoryAdapter) dataToModel(data *ports.TripData) *TripModel {
	return &TripModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Title:              data.Title,
		DestinationCity:    data.DestinationCity,
		DestinationCountry: data.DestinationCountry,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Duration:           data.Duration,
		BudgetAmount:       data.BudgetAmount,
		BudgetCurrency:     data.BudgetCurrency,
		Interests:          encodeStringList(data.Interests),
		TravelStyle:        data.TravelStyle,
		ItineraryData:      encodeBlob(data.ItineraryData),
		AIGenerated:        data.AIGenerated,
		GenerationModel:    data.GenerationModel,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		Status:             data.Status,
		IsPublic:           data.IsPublic,
		IsFavorite:         data.IsFavorite,
		Notes:              data.Notes,
		Tags:               encodeStringList(data.Tags),
		WeatherData:        encodeBlob(data.WeatherData),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *TripRepositoryAdapter) modelToData(model *TripModel) *ports.TripData {
	return &ports.TripData{
		ID:                 model.ID,
		UserID:             model.UserID,
		Title:              model.Title,
		DestinationCity:    model.DestinationCity,
		DestinationCountry: model.DestinationCountry,
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		Duration:           model.Duration,
		BudgetAmount:       model.BudgetAmount,
		BudgetCurrency:     model.BudgetCurrency,
		Interests:          decodeStringList(model.Interests),
		TravelStyle:        model.TravelStyle,
		ItineraryData:      decodeBlob(model.ItineraryData),
		AIGenerated:        model.AIGenerated,
		GenerationModel:    model.GenerationModel,
		StartDate:          utcDate(model.StartDate),
		EndDate:            utcDate(model.EndDate),
		Status:             model.Status,
		IsPublic:           model.IsPublic,
		IsFavorite:         model.IsFavorite,
		Notes:              model.Notes,
		Tags:               decodeStringList(model.Tags),
		WeatherData:        decodeBlob(model.WeatherData),
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func utcDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := t.UTC()
	return &d
}
