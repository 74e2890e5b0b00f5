package service

import "vitisense/entities"

// FarmService is the best-effort persistence of an owner's saved farms.
// Storage failures are logged and never returned.
type FarmService interface {
	LoadAll(owner string) entities.SavedFarms
	SaveAll(owner string, farms entities.SavedFarms)
	Upsert(owner string, farms *entities.SavedFarms, f entities.Farm)
	FindByName(farms entities.SavedFarms, name string) (entities.Farm, bool)
}
