package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vitisense/entities"
)

type repoMock struct{ mock.Mock }

func (m *repoMock) Load(owner string) (entities.SavedFarms, error) {
	args := m.Called(owner)
	farms, _ := args.Get(0).(entities.SavedFarms)
	return farms, args.Error(1)
}

func (m *repoMock) Save(owner string, farms entities.SavedFarms) error {
	return m.Called(owner, farms).Error(0)
}

func TestLoadAllDegradesToEmpty(t *testing.T) {
	r := new(repoMock)
	r.On("Load", "broken").Return(nil, errors.New("disk on fire"))
	r.On("Load", "new").Return(nil, nil)
	s := NewFarmService(r)

	assert.Equal(t, entities.SavedFarms{}, s.LoadAll("broken"))
	assert.Equal(t, entities.SavedFarms{}, s.LoadAll("new"))
	r.AssertExpectations(t)
}

func TestSaveAllSwallowsErrors(t *testing.T) {
	r := new(repoMock)
	r.On("Save", "o", mock.Anything).Return(errors.New("read-only"))
	s := NewFarmService(r)

	assert.NotPanics(t, func() { s.SaveAll("o", entities.SavedFarms{{Name: "A"}}) })
	r.AssertNumberOfCalls(t, "Save", 1)
}

func TestUpsertPersistsWholeCollection(t *testing.T) {
	r := new(repoMock)
	r.On("Save", "o", mock.Anything).Return(nil)
	s := NewFarmService(r)

	farms := entities.SavedFarms{{Name: "A", Type: entities.FarmVineyard}, {Name: "B", Type: entities.FarmOrchard}}
	s.Upsert("o", &farms, entities.Farm{Name: "A", Type: entities.FarmLavender})

	want := entities.SavedFarms{{Name: "A", Type: entities.FarmLavender}, {Name: "B", Type: entities.FarmOrchard}}
	assert.Equal(t, want, farms)
	r.AssertCalled(t, "Save", "o", want)

	s.Upsert("o", &farms, entities.Farm{Name: "C", Type: entities.FarmFieldCrops})
	assert.Len(t, farms, 3)
	assert.Equal(t, "C", farms[2].Name)
}

func TestFindByName(t *testing.T) {
	s := NewFarmService(new(repoMock))
	farms := entities.SavedFarms{{Name: "A"}, {Name: "B"}}
	f, ok := s.FindByName(farms, "B")
	assert.True(t, ok)
	assert.Equal(t, "B", f.Name)
	_, ok = s.FindByName(farms, "Z")
	assert.False(t, ok)
}
