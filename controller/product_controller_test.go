package controller_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Krizzna69/shop-backend/model"
)

func TestCreateProductRoundTrip(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", "admin")

	resp := doJSON(t, app, "POST", "/api/products", tokenFor(t, admin), map[string]interface{}{
		"name":          "Widget",
		"price":         9.99,
		"category":      "Tools",
		"stockQuantity": 5,
	})
	if resp.StatusCode != 201 {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}

	var created model.Product
	decodeBody(t, resp, &created)
	if created.ID == 0 {
		t.Fatal("no id generated")
	}
	if created.Name != "Widget" || created.Price != 9.99 || created.Category != "Tools" || created.StockQuantity != 5 {
		t.Fatalf("created = %+v", created)
	}
	if created.CreatedBy != admin.ID {
		t.Fatalf("createdBy = %d, want %d", created.CreatedBy, admin.ID)
	}

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/products/%d", created.ID), "", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	var fetched model.Product
	decodeBody(t, resp, &fetched)
	if fetched.ID != created.ID || fetched.Name != created.Name || fetched.Price != created.Price {
		t.Fatalf("fetched %+v does not match created %+v", fetched, created)
	}
}

func TestCreateProductForbiddenForNonAdmin(t *testing.T) {
	app, db := setupApp(t)
	user := createUser(t, db, "User", "user@example.com", "user")

	resp := doJSON(t, app, "POST", "/api/products", tokenFor(t, user), map[string]interface{}{
		"name":  "Widget",
		"price": 9.99,
	})
	if resp.StatusCode != 403 {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}

	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count != 0 {
		t.Fatalf("product count = %d, want 0", count)
	}
}

func TestCreateProductRequiresToken(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/products", "", map[string]interface{}{
		"name":  "Widget",
		"price": 9.99,
	})
	if resp.StatusCode != 401 {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGetProductNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/products/9999", "", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", "admin")

	resp := doJSON(t, app, "DELETE", "/api/products/9999", tokenFor(t, admin), nil)
	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestListProductsNewestFirst(t *testing.T) {
	app, db := setupApp(t)

	older := model.Product{Name: "Old", Price: 1, CreatedAt: time.Now().Add(-time.Hour)}
	newer := model.Product{Name: "New", Price: 2, CreatedAt: time.Now()}
	if err := db.Create(&older).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, "GET", "/api/products", "", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var products []model.Product
	decodeBody(t, resp, &products)
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2", len(products))
	}
	if products[0].Name != "New" || products[1].Name != "Old" {
		t.Fatalf("order = %s, %s; want New, Old", products[0].Name, products[1].Name)
	}
}

func TestUpdateProductOverwritesFields(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", "admin")

	p := model.Product{Name: "Before", Price: 1, Category: "A", StockQuantity: 1, CreatedAt: time.Now()}
	if err := db.Create(&p).Error; err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, "PUT", fmt.Sprintf("/api/products/%d", p.ID), tokenFor(t, admin), map[string]interface{}{
		"name":          "After",
		"price":         2.5,
		"category":      "B",
		"stockQuantity": 7,
	})
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updated model.Product
	if err := db.First(&updated, p.ID).Error; err != nil {
		t.Fatal(err)
	}
	if updated.Name != "After" || updated.Price != 2.5 || updated.Category != "B" || updated.StockQuantity != 7 {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestDeleteProduct(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", "admin")

	p := model.Product{Name: "Doomed", Price: 1, CreatedAt: time.Now()}
	if err := db.Create(&p).Error; err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, "DELETE", fmt.Sprintf("/api/products/%d", p.ID), tokenFor(t, admin), nil)
	if resp.StatusCode != 200 {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/products/%d", p.ID), "", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("get after delete status = %d, want 404", resp.StatusCode)
	}
}
