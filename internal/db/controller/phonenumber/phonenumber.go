// Package phonenumber provides CRUD operations for phone number mode records.
package phonenumber

import (
	"errors"

	"gorm.io/gorm"

	"github.com/voicegate/phonemode/internal/db/models"
	"github.com/voicegate/phonemode/internal/phone"
)

const (
	numberQueryPattern = "number = ?"
)

var (
	// ErrNumberNotFound is returned when no record matches the given number or id.
	ErrNumberNotFound = errors.New("phone number not found")
	// ErrNumberEmpty is returned when the normalized number is empty.
	ErrNumberEmpty = errors.New("phone number cannot be empty")
	// ErrNumberExists is returned when attempting to create a number that already exists.
	ErrNumberExists = errors.New("phone number already exists")
	// ErrInvalidMode is returned when the mode is not CALL or OTP.
	ErrInvalidMode = errors.New("mode must be CALL or OTP")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// FindByNumber retrieves a record by its exact normalized number.
func FindByNumber(db *gorm.DB, number string) (*models.PhoneNumber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	number = phone.Normalize(number)
	if number == "" {
		return nil, ErrNumberEmpty
	}

	var record models.PhoneNumber
	result := db.Where(numberQueryPattern, number).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNumberNotFound
		}
		return nil, result.Error
	}

	return &record, nil
}

// GetAll retrieves all records, newest first.
func GetAll(db *gorm.DB) ([]models.PhoneNumber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var records []models.PhoneNumber
	result := db.Order("created_at DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// Create inserts a new record for a number.
// The number is normalized before any check; an already existing number
// fails with ErrNumberExists, never an overwrite.
func Create(db *gorm.DB, number string, mode models.Mode) (*models.PhoneNumber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	number = phone.Normalize(number)
	if number == "" {
		return nil, ErrNumberEmpty
	}

	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	// Check if the number already exists
	var existing models.PhoneNumber
	result := db.Where(numberQueryPattern, number).First(&existing)
	if result.Error == nil {
		return nil, ErrNumberExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	record := &models.PhoneNumber{
		Number: number,
		Mode:   mode,
	}

	result = db.Create(record)
	if result.Error != nil {
		// a concurrent insert may win between the check and the create;
		// the unique constraint turns the loser into a duplicate error
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrNumberExists
		}
		return nil, result.Error
	}

	return record, nil
}

// UpdateMode updates the mode of an existing record by ID.
func UpdateMode(db *gorm.DB, id uint64, mode models.Mode) (*models.PhoneNumber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	var record models.PhoneNumber
	result := db.First(&record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNumberNotFound
		}
		return nil, result.Error
	}

	record.Mode = mode
	result = db.Save(&record)
	if result.Error != nil {
		return nil, result.Error
	}

	return &record, nil
}

// Delete removes a record by ID and returns the removed record.
func Delete(db *gorm.DB, id uint64) (*models.PhoneNumber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var record models.PhoneNumber
	result := db.First(&record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNumberNotFound
		}
		return nil, result.Error
	}

	result = db.Delete(&models.PhoneNumber{}, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNumberNotFound
	}

	return &record, nil
}

// UpsertMode creates or updates a record by number (upsert operation).
// An existing record keeps its id and creation time, only the mode is
// overwritten. Used by the startup seeder only.
func UpsertMode(db *gorm.DB, number string, mode models.Mode) (*models.PhoneNumber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	number = phone.Normalize(number)
	if number == "" {
		return nil, ErrNumberEmpty
	}

	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	var record models.PhoneNumber
	result := db.Where(numberQueryPattern, number).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Record doesn't exist, create it
		return Create(db, number, mode)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	// Record exists, overwrite the mode in place
	record.Mode = mode
	result = db.Save(&record)
	if result.Error != nil {
		return nil, result.Error
	}

	return &record, nil
}

// Count returns the total number of records.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.PhoneNumber{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// CountByMode returns the number of records with the given mode.
func CountByMode(db *gorm.DB, mode models.Mode) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.PhoneNumber{}).Where("mode = ?", mode).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
