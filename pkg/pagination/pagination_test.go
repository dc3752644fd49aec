package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
)

func TestTotalPages_Techo(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 7, 15},
		{5, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pagination.TotalPages(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}

// Para toda combinación válida: len(items) == min(pageSize, restantes) y totalPages == ceil(total/size).
func TestNew_PropiedadesDeLaVentana(t *testing.T) {
	for total := int64(0); total <= 37; total++ {
		for size := 1; size <= 12; size++ {
			pages := pagination.TotalPages(total, size)
			for idx := 1; idx <= pages+1; idx++ {
				w := pagination.Window{PageIndex: idx, PageSize: size}
				remaining := int(total) - w.Offset()
				if remaining < 0 {
					remaining = 0
				}
				want := min(size, remaining)

				page := pagination.New(make([]int, want), w, total)

				assert.Len(t, page.Items, want)
				assert.Equal(t, pages, page.TotalPages)
				assert.LessOrEqual(t, len(page.Items), page.PageSize)
			}
		}
	}
}

func TestNew_RecortaItemsSobrantes(t *testing.T) {
	page := pagination.New([]string{"a", "b", "c", "d"}, pagination.Window{PageIndex: 1, PageSize: 3}, 4)

	assert.Equal(t, []string{"a", "b", "c"}, page.Items, "el orden de la página se conserva")
	assert.Equal(t, 2, page.TotalPages)
}

func TestNew_ItemsNilSerializaComoListaVacia(t *testing.T) {
	page := pagination.New[int](nil, pagination.Window{}, 0)

	assert.NotNil(t, page.Items)
	assert.Equal(t, pagination.DefaultPageIndex, page.PageIndex)
	assert.Equal(t, pagination.DefaultPageSize, page.PageSize)
}

func TestWindow_Normalize(t *testing.T) {
	w := pagination.Window{PageIndex: -3, PageSize: 500}.Normalize()

	assert.Equal(t, 1, w.PageIndex)
	assert.Equal(t, pagination.MaxPageSize, w.PageSize)
	assert.Equal(t, 0, w.Offset())
}

func TestMap_ConservaMetadatos(t *testing.T) {
	src := pagination.New([]int{1, 2}, pagination.Window{PageIndex: 2, PageSize: 2}, 5)

	dst := pagination.Map(src, func(n int) string { return string(rune('a' + n)) })

	assert.Equal(t, []string{"b", "c"}, dst.Items)
	assert.Equal(t, 2, dst.PageIndex)
	assert.Equal(t, int64(5), dst.TotalCount)
	assert.Equal(t, 3, dst.TotalPages)
}
