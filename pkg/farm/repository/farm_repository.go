package repository

import "vitisense/entities"

// SavedFarmsKey is the store key the saved farm list lives under.
const SavedFarmsKey = "farmlink_saved_farms"

type FarmRepository interface {
	// Load returns nil, nil when the owner has nothing stored.
	Load(owner string) (entities.SavedFarms, error)
	Save(owner string, farms entities.SavedFarms) error
}
