package testhelpers

import (
	"testing"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Catalog is a small menu seeded for tests: one category holding a pizza
// with two sizes and a salad with one.
type Catalog struct {
	Category models.Category
	Pizza    models.Food
	Small    models.Size
	Large    models.Size
	Salad    models.Food
	Bowl     models.Size
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create fixture %T: %v", value, err)
	}
}

// CreateCategory inserts a category with the given name.
func CreateCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name}
	mustCreate(t, db, &c)
	return c
}

// CreateFood inserts a dish in category.
func CreateFood(t *testing.T, db *gorm.DB, category uint, name string) models.Food {
	t.Helper()
	f := models.Food{
		Name:        name,
		Image:       "food_images/" + name + ".jpg",
		Description: name + " description",
		CategoryID:  category,
	}
	mustCreate(t, db, &f)
	return f
}

// CreateSize inserts a size of food priced at price, e.g. "9.99".
func CreateSize(t *testing.T, db *gorm.DB, food uint, name, price string) models.Size {
	t.Helper()
	s := models.Size{Name: name, Price: decimal.RequireFromString(price), FoodID: food}
	mustCreate(t, db, &s)
	return s
}

// SeedCatalog inserts the Catalog fixture.
func SeedCatalog(t *testing.T, db *gorm.DB) Catalog {
	t.Helper()
	var c Catalog
	c.Category = CreateCategory(t, db, "Pizza")
	c.Pizza = CreateFood(t, db, c.Category.ID, "Margherita")
	c.Small = CreateSize(t, db, c.Pizza.ID, "small", "9.99")
	c.Large = CreateSize(t, db, c.Pizza.ID, "large", "14.50")
	c.Salad = CreateFood(t, db, c.Category.ID, "Caesar")
	c.Bowl = CreateSize(t, db, c.Salad.ID, "bowl", "6.00")
	return c
}

// CreateOrder inserts an order whose single line orders quantity of size.
func CreateOrder(t *testing.T, db *gorm.DB, food, size uint, quantity uint) models.Order {
	t.Helper()
	o := models.Order{
		Name:    "Jane Customer",
		Email:   "jane@example.com",
		Phone:   "+996555123456",
		Address: "Chui Ave",
		Home:    "12",
		Status:  models.StatusWaiting,
	}
	mustCreate(t, db, &o)
	line := models.OrderingFood{OrderID: o.ID, FoodID: food}
	mustCreate(t, db, &line)
	mustCreate(t, db, &models.SizeForSale{OrderingFoodID: line.ID, SizeID: size, Quantity: quantity})
	return o
}

// CreateUser inserts an account with a bcrypt hash of password.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, staff bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := models.User{Name: "Test User", Email: email, PasswordHash: string(hash), IsStaff: staff}
	mustCreate(t, db, &u)
	return u
}
