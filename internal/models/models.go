package models

// Roles a user can register with. Sellers manage products through the
// dashboard, clients buy them.
const (
	RoleSeller = "seller"
	RoleClient = "client"
)

// User as stored in the roster blob. JSON field names follow the original
// storage format, including the plaintext "pass" field (known limitation,
// kept as-is).
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"pass"`
	Role     string `json:"type"`
}

// Product in the catalog blob. SellerName is a denormalized copy of the
// owning seller's name, taken at creation time.
type Product struct {
	ID          string  `json:"id"`
	SellerID    string  `json:"sellerId"`
	SellerName  string  `json:"sellerName"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"img"`
	Description string  `json:"desc"`
	Stock       int     `json:"stock"`
	Preorder    bool    `json:"preorder"`
}

// SoldOut reports whether the product cannot be bought. Preorder products
// are never gated on stock.
func (p Product) SoldOut() bool {
	return p.Stock <= 0 && !p.Preorder
}
