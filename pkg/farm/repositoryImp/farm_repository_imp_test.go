package repositoryImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vitisense/database"
	"vitisense/entities"
	"vitisense/pkg/farm/repository"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func TestLoadMissingRow(t *testing.T) {
	r := New(openDB(t))
	farms, err := r.Load("nobody")
	require.NoError(t, err)
	assert.Nil(t, farms)
}

func TestSaveThenLoad(t *testing.T) {
	r := New(openDB(t))
	c := entities.Point{52.001, -0.999}
	in := entities.SavedFarms{
		{Name: "A", Type: entities.FarmVineyard, Boundary: entities.Boundary{{52, -1}, {52, -0.998}, {52.002, -0.998}, {52.002, -1}}, Center: &c},
		{Name: "B", Type: entities.FarmOrchard},
	}
	require.NoError(t, r.Save("grower@example.com", in))

	out, err := r.Load("grower@example.com")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	other, err := r.Load("someone-else")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	r := New(openDB(t))
	require.NoError(t, r.Save("o", entities.SavedFarms{{Name: "A", Type: entities.FarmVineyard}, {Name: "B", Type: entities.FarmOrchard}}))
	require.NoError(t, r.Save("o", entities.SavedFarms{{Name: "C", Type: entities.FarmLavender}}))

	out, err := r.Load("o")
	require.NoError(t, err)
	assert.Equal(t, entities.SavedFarms{{Name: "C", Type: entities.FarmLavender}}, out)
}

func TestLoadRejectsCorruptValue(t *testing.T) {
	db := openDB(t)
	r := New(db)

	for _, raw := range []string{
		`not json`,
		`{"name":"A"}`,
		`[{"type":"Vineyard"}]`,
		`[{"name":"A","type":"Vineyard","boundary":[[1,2,3]]}]`,
		`[{"name":"A","type":"Vineyard","center":"here"}]`,
	} {
		require.NoError(t, db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entities.StoredValue{Owner: "o", Key: repository.SavedFarmsKey, Value: raw}).Error)
		farms, err := r.Load("o")
		assert.Error(t, err, raw)
		assert.Nil(t, farms, raw)
	}
}

func TestLoadAcceptsNullOptionalFields(t *testing.T) {
	db := openDB(t)
	raw := `[{"name":"A","type":"Vineyard","boundary":null,"center":null}]`
	require.NoError(t, db.Create(&entities.StoredValue{Owner: "o", Key: repository.SavedFarmsKey, Value: raw}).Error)

	farms, err := New(db).Load("o")
	require.NoError(t, err)
	assert.Equal(t, entities.SavedFarms{{Name: "A", Type: entities.FarmVineyard}}, farms)
}
