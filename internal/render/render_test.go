package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", SellerID: "s1", SellerName: "Maria Silva", Title: "Bolsa de Crochê Azul", Price: 45, Stock: 5},
		{ID: "2", SellerID: "s2", SellerName: "Ana Souza", Title: "Boneca de Pano", Price: 60, Stock: 2, Preorder: true},
	}
}

func TestGrid_ContainsAllProducts(t *testing.T) {
	t.Parallel()

	html, err := Grid(sampleProducts())
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Bolsa de Crochê Azul")
	assert.Contains(t, s, "Boneca de Pano")
	assert.Contains(t, s, "R$ 45,00")
}

func TestGrid_OmitsDeletedProduct(t *testing.T) {
	t.Parallel()

	products := sampleProducts()[:1]
	html, err := Grid(products)
	require.NoError(t, err)

	s := string(html)
	assert.NotContains(t, s, "Boneca de Pano")
	assert.NotContains(t, s, `data-product-id="2"`)
}

func TestCard_States(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product models.Product
		want    string
		notWant string
	}{
		{
			name:    "sold out",
			product: models.Product{ID: "x", Title: "Tapete", Stock: 0},
			want:    "Esgotado",
			notWant: "Comprar",
		},
		{
			name:    "preorder ignores zero stock",
			product: models.Product{ID: "x", Title: "Tapete", Stock: 0, Preorder: true},
			want:    "Encomendar",
			notWant: "Esgotado",
		},
		{
			name:    "in stock",
			product: models.Product{ID: "x", Title: "Tapete", Stock: 7},
			want:    "Comprar",
			notWant: "Esgotado",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html, err := Grid([]models.Product{tt.product})
			require.NoError(t, err)
			assert.Contains(t, string(html), tt.want)
			assert.NotContains(t, string(html), tt.notWant)
		})
	}
}

func TestSellerProfile_ScopedToSeller(t *testing.T) {
	t.Parallel()

	html, err := SellerProfile("Maria Silva", sampleProducts()[:1])
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Loja de Maria Silva")
	assert.Contains(t, s, "Bolsa de Crochê Azul")
	assert.NotContains(t, s, "Boneca de Pano")
}

func TestDashboard_EmptyState(t *testing.T) {
	t.Parallel()

	html, err := Dashboard(nil, "")
	require.NoError(t, err)
	assert.Contains(t, string(html), "Você ainda não cadastrou produtos.")
}

func TestDashboard_EditPrefillsForm(t *testing.T) {
	t.Parallel()

	products := sampleProducts()
	html, err := Dashboard(products, "1")
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, `value="1"`)
	assert.Contains(t, s, `value="Bolsa de Crochê Azul"`)
	assert.Contains(t, s, "Salvar alterações")
}

func TestCartPanel_BadgeAndTotal(t *testing.T) {
	t.Parallel()

	html, err := CartPanel(sampleProducts(), true)
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, `<span id="cart-badge">2</span>`)
	assert.Contains(t, s, "R$ 105,00")
	assert.Contains(t, s, `class="open"`)
}

func TestCartPanel_EscapesUserContent(t *testing.T) {
	t.Parallel()

	html, err := CartPanel([]models.Product{{ID: "x", Title: "<script>alert(1)</script>"}}, false)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(html), "<script>alert(1)</script>"))
}
