package repositoryImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vitisense/entities"
	"vitisense/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Load(owner string) (entities.SavedFarms, error) {
	var row entities.StoredValue
	err := r.db.Where("owner = ? AND store_key = ?", owner, repository.SavedFarmsKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := validateStored(row.Value); err != nil {
		return nil, err
	}
	var farms entities.SavedFarms
	if err := json.Unmarshal([]byte(row.Value), &farms); err != nil {
		return nil, fmt.Errorf("decode saved farms: %w", err)
	}
	return farms, nil
}

func (r *farmRepo) Save(owner string, farms entities.SavedFarms) error {
	if farms == nil {
		farms = entities.SavedFarms{}
	}
	b, err := json.Marshal(farms)
	if err != nil {
		return err
	}
	row := entities.StoredValue{
		Owner:     owner,
		Key:       repository.SavedFarmsKey,
		Value:     string(b),
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}
