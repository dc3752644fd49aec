package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
)

type source struct {
	Name     string
	Alias    string
	Password string
	Count    int
}

type target struct {
	Name      string
	Digest    string
	Count     int
	Confirmed bool
	Untouched string
}

func TestMap_CopiaPorNombre(t *testing.T) {
	p := mapping.NewProfile[source, target]()

	got := p.Map(source{Name: "Acme", Alias: "ac", Count: 3})

	assert.Equal(t, "Acme", got.Name)
	assert.Empty(t, got.Digest, "Alias no tiene destino")
	assert.Equal(t, 3, got.Count)
	assert.Empty(t, got.Untouched, "campo no declarado queda en su valor por defecto")
}

func TestMap_HooksEnOrden(t *testing.T) {
	var order []string
	p := mapping.NewProfile(
		func(s *source, d *target) { order = append(order, "digest"); d.Digest = "h(" + s.Password + ")" },
		func(_ *source, d *target) { order = append(order, "confirm"); d.Confirmed = false },
	)

	got := p.Map(source{Password: "secret"})

	assert.Equal(t, "h(secret)", got.Digest)
	assert.False(t, got.Confirmed)
	assert.Equal(t, []string{"digest", "confirm"}, order)
}

func TestThen_NoModificaElOriginal(t *testing.T) {
	base := mapping.NewProfile[source, target]()
	withDefault := base.Then(func(_ *source, d *target) { d.Untouched = "x" })

	assert.Empty(t, base.Map(source{}).Untouched)
	assert.Equal(t, "x", withDefault.Map(source{}).Untouched)
}

func TestMapPtrYMapSlice(t *testing.T) {
	p := mapping.NewProfile[source, target]()

	assert.Nil(t, p.MapPtr(nil))
	got := p.MapPtr(&source{Name: "a"})
	require.NotNil(t, got)
	assert.Equal(t, "a", got.Name)

	list := p.MapSlice([]source{{Name: "a"}, {Name: "b"}})
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "b", list[1].Name)
	assert.NotNil(t, p.MapSlice(nil))
}

func TestNormalizeName(t *testing.T) {
	decomposed := "Cafe\u0301 "
	assert.Equal(t, "Caf\u00e9", mapping.NormalizeName(decomposed))
	assert.Equal(t, mapping.NormalizeName("Café"), mapping.NormalizeName(decomposed))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@shop.test", mapping.NormalizeEmail("  Ana@Shop.TEST "))
}
