package state

import (
	"github.com/Francieverton/ACOLD-MKT/internal/models"
)

// Fixed demo data written once into an empty store.

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			SellerID:    "s1",
			SellerName:  "Maria Silva",
			Title:       "Bolsa de Crochê Azul",
			Price:       45.00,
			ImageURL:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=500",
			Description: "Feita à mão com fio náutico.",
			Stock:       5,
		},
		{
			ID:          "2",
			SellerID:    "s2",
			SellerName:  "Ana Souza",
			Title:       "Boneca de Pano",
			Price:       60.00,
			ImageURL:    "https://images.unsplash.com/photo-1558679908-4e7fa56a297e?w=500",
			Description: "Hipoalergênica e lavável.",
			Stock:       2,
			Preorder:    true,
		},
		{
			ID:          "3",
			SellerID:    "s1",
			SellerName:  "Maria Silva",
			Title:       "Kit Panos de Prato",
			Price:       25.00,
			ImageURL:    "https://images.unsplash.com/photo-1596464716127-f9a0639b5d7e?w=500",
			Description: "Bordado ponto cruz.",
			Stock:       10,
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "s1", Name: "Maria Silva", Email: "maria@cold.com", Password: "123", Role: models.RoleSeller},
		{ID: "c1", Name: "João Cliente", Email: "joao@cold.com", Password: "123", Role: models.RoleClient},
	}
}
