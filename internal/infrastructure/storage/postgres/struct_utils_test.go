package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fabrica/internal/core/entity"
	"fabrica/internal/core/id"
	"fabrica/internal/domain/catalogs/rawmaterial"
)

type RecordHeader struct {
	Code string `db:"code"`
	Name string `db:"name"`
}

type testRecord struct {
	RecordHeader

	Quantity int64  `db:"quantity"`
	Skipped  string `db:"-"`
	Untagged string
}

func TestExtractDBColumnsFlattensEmbedded(t *testing.T) {
	cols := ExtractDBColumns[*testRecord]()

	assert.Equal(t, []string{"code", "name", "quantity"}, cols)
}

func TestExtractDBColumnsCatalogEntity(t *testing.T) {
	cols := ExtractDBColumns[*rawmaterial.RawMaterial]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "available_quantity")
	assert.Contains(t, cols, "warehouse_id")
	assert.NotContains(t, cols, "")
}

func TestStructToMap(t *testing.T) {
	v := &testRecord{
		RecordHeader: RecordHeader{Code: "RM-001", Name: "Steel"},
		Quantity:   7,
		Skipped:    "hidden",
		Untagged:   "hidden",
	}

	m := StructToMap(v)

	assert.Equal(t, "RM-001", m["code"])
	assert.Equal(t, "Steel", m["name"])
	assert.Equal(t, int64(7), m["quantity"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 3)
}

func TestStructToMapDomainEntity(t *testing.T) {
	mat := rawmaterial.New("RM-002", "Glass", id.New(), 12)

	m := StructToMap(mat)

	assert.Equal(t, mat.ID, m["id"])
	assert.Equal(t, "RM-002", m["code"])
	assert.Equal(t, int64(12), m["available_quantity"])
	assert.Equal(t, mat.WarehouseID, m["warehouse_id"])
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}

func TestExtractDBColumnsBase(t *testing.T) {
	cols := ExtractDBColumns[*entity.Base]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "is_active")
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "updated_at")
}
