// Package render projects domain state slices into display fragments.
// Projections never mutate state; callers decide where fragments go.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/Francieverton/ACOLD-MKT/internal/models"
)

func formatCurrency(v float64) string {
	return "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", v), ".", ",")
}

var funcs = template.FuncMap{
	"currency": formatCurrency,
}

var tmpl = template.Must(template.New("render").Funcs(funcs).Parse(`
{{define "card"}}
<article class="card" data-product-id="{{.ID}}">
  <div class="card-img-container">
    {{if .Preorder}}<span class="card-tag">Sob Encomenda</span>{{end}}
    <img src="{{.ImageURL}}" class="card-img" alt="{{.Title}}">
  </div>
  <div class="card-body">
    <a class="seller-link" href="/sellers/{{.SellerID}}">por {{.SellerName}}</a>
    <h3 class="card-title"><a href="/products/{{.ID}}">{{.Title}}</a></h3>
    <div class="card-price">{{currency .Price}}</div>
    <p class="card-desc">{{.Description}}</p>
    <div class="stock-info {{if lt .Stock 3}}stock-low{{else}}stock-ok{{end}}">
      {{if .Preorder}}Produção sob demanda{{else}}Estoque: {{.Stock}} un.{{end}}
    </div>
    <form method="post" action="/purchase/{{.ID}}">
      <button class="btn-primary" {{if .SoldOut}}disabled{{end}}>
        {{if .SoldOut}}Esgotado{{else if .Preorder}}Encomendar{{else}}Comprar{{end}}
      </button>
    </form>
    <form method="post" action="/cart/{{.ID}}">
      <button class="btn-secondary" {{if .SoldOut}}disabled{{end}}>Adicionar ao carrinho</button>
    </form>
  </div>
</article>
{{end}}

{{define "grid"}}
<section id="product-grid" class="grid">
{{range .}}{{template "card" .}}{{end}}
</section>
{{end}}

{{define "seller-profile"}}
<section id="seller-profile">
  <h2 id="profile-name">Loja de {{.SellerName}}</h2>
  <div id="seller-grid" class="grid">
  {{range .Products}}{{template "card" .}}{{end}}
  </div>
</section>
{{end}}

{{define "detail"}}
<section id="product-detail">
  {{template "card" .}}
</section>
{{end}}

{{define "dashboard"}}
<section id="seller-dashboard">
  {{if not .Products}}
  <p class="empty-dashboard">Você ainda não cadastrou produtos.</p>
  {{else}}
  <div id="seller-products-list" class="grid">
  {{range .Products}}
    <div class="card dashboard-card">
      <img src="{{.ImageURL}}" alt="{{.Title}}">
      <h4>{{.Title}}</h4>
      <div class="card-price">{{currency .Price}}</div>
      <div class="stock-info">Estoque: {{.Stock}}</div>
      <form method="post" action="/products/{{.ID}}/edit"><button>Editar</button></form>
      <form method="post" action="/products/{{.ID}}/delete"
            onsubmit="return confirm('Excluir este produto?')"><button>Excluir</button></form>
    </div>
  {{end}}
  </div>
  {{end}}
  <form id="product-form" method="post" action="/products">
    <input type="hidden" name="editing" value="{{.EditingID}}">
    <input name="title" value="{{.Form.Title}}" placeholder="Nome do produto" required>
    <input name="img" value="{{.Form.ImageURL}}" placeholder="URL da imagem">
    <input name="price" type="number" step="0.01" min="0" value="{{printf "%.2f" .Form.Price}}">
    <input name="stock" type="number" min="0" value="{{.Form.Stock}}">
    <textarea name="desc">{{.Form.Description}}</textarea>
    <label><input name="preorder" type="checkbox" {{if .Form.Preorder}}checked{{end}}> Sob encomenda</label>
    <button>{{if .EditingID}}Salvar alterações{{else}}Adicionar produto{{end}}</button>
  </form>
</section>
{{end}}

{{define "cart"}}
<aside id="cart-panel" {{if .Open}}class="open"{{end}}>
  <span id="cart-badge">{{len .Items}}</span>
  <ul>
  {{range .Items}}
    <li>
      {{.Title}} — {{currency .Price}}
      <form method="post" action="/cart/{{.ID}}/remove"><button>Remover</button></form>
    </li>
  {{end}}
  </ul>
  <div class="cart-total">Total: {{currency .Total}}</div>
  <form method="post" action="/checkout"><button {{if not .Items}}disabled{{end}}>Finalizar pedido</button></form>
</aside>
{{end}}
`))

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render: %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Grid renders the product grid in catalog order.
func Grid(products []models.Product) (template.HTML, error) {
	return execute("grid", products)
}

type sellerProfileData struct {
	SellerName string
	Products   []models.Product
}

// SellerProfile renders one seller's storefront.
func SellerProfile(sellerName string, products []models.Product) (template.HTML, error) {
	return execute("seller-profile", sellerProfileData{SellerName: sellerName, Products: products})
}

// ProductDetail renders the single-product screen.
func ProductDetail(p models.Product) (template.HTML, error) {
	return execute("detail", p)
}

type dashboardData struct {
	Products  []models.Product
	EditingID string
	Form      models.Product
}

// Dashboard renders the seller's own products and the creation form,
// pre-filled from the record named by the editing marker.
func Dashboard(products []models.Product, editingID string) (template.HTML, error) {
	data := dashboardData{Products: products, EditingID: editingID}
	for _, p := range products {
		if p.ID == editingID {
			data.Form = p
			break
		}
	}
	return execute("dashboard", data)
}

type cartData struct {
	Items []models.Product
	Total float64
	Open  bool
}

// CartPanel renders the cart in insertion order with the badge count.
func CartPanel(items []models.Product, open bool) (template.HTML, error) {
	data := cartData{Items: items, Open: open}
	for _, p := range items {
		data.Total += p.Price
	}
	return execute("cart", data)
}
