package serviceImp

import (
	"log"

	"vitisense/entities"
	repo "vitisense/pkg/farm/repository"
	"vitisense/pkg/farm/service"
)

type farmSvc struct{ r repo.FarmRepository }

func NewFarmService(r repo.FarmRepository) service.FarmService { return &farmSvc{r} }

func (s *farmSvc) LoadAll(owner string) entities.SavedFarms {
	farms, err := s.r.Load(owner)
	if err != nil {
		log.Printf("[farm] load %q: %v (starting empty)", owner, err)
		return entities.SavedFarms{}
	}
	if farms == nil {
		return entities.SavedFarms{}
	}
	return farms
}

func (s *farmSvc) SaveAll(owner string, farms entities.SavedFarms) {
	if err := s.r.Save(owner, farms); err != nil {
		log.Printf("[farm] save %q (%d farms): %v", owner, len(farms), err)
	}
}

func (s *farmSvc) Upsert(owner string, farms *entities.SavedFarms, f entities.Farm) {
	if farms.Upsert(f) {
		log.Printf("[farm] replaced %q for %q", f.Name, owner)
	}
	s.SaveAll(owner, *farms)
}

func (s *farmSvc) FindByName(farms entities.SavedFarms, name string) (entities.Farm, bool) {
	return farms.FindByName(name)
}
