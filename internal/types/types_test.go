package types

import (
	"encoding/json"
	"testing"

	"github.com/pageza/foodcourt/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizza() models.Food {
	return models.Food{
		ID:          1,
		Name:        "Pizza",
		Image:       "food_images/pizza.jpg",
		Description: "Stone baked",
		CategoryID:  4,
		Category:    models.Category{ID: 4, Name: "Mains"},
		Sizes:       []models.Size{{ID: 2, Name: "Small", Price: decimal.RequireFromString("9.99"), FoodID: 1}},
		Makeups:     []models.FoodMakeup{{ID: 3, Name: "Cheese", FoodID: 1}},
		Weight:      []models.FoodWeight{{ID: 5, Value: decimal.NewFromInt(300), FoodID: 1}},
	}
}

func TestFoodReadResponseExpandsCategory(t *testing.T) {
	raw, err := json.Marshal(NewFoodReadResponse(pizza()))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	category := body["category"].(map[string]any)
	assert.Equal(t, "Mains", category["name"])

	sizes := body["sizes"].([]any)
	require.Len(t, sizes, 1)
	assert.Equal(t, "Small", sizes[0].(map[string]any)["name"])
	assert.Equal(t, "9.99", sizes[0].(map[string]any)["price"])

	weight := body["weight"].([]any)
	require.Len(t, weight, 1)
	assert.Equal(t, "300.000", weight[0].(map[string]any)["value"])

	makeups := body["makeups"].([]any)
	assert.Equal(t, "Cheese", makeups[0].(map[string]any)["name"])
}

func TestFoodCreateResponseKeepsCategoryID(t *testing.T) {
	raw, err := json.Marshal(NewFoodCreateResponse(pizza()))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(4), body["category"])
	assert.Len(t, body["sizes"], 1)
}

func TestFoodFlatResponseHasNoChildren(t *testing.T) {
	raw, err := json.Marshal(NewFoodResponse(pizza()))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sizes")
	assert.Contains(t, string(raw), `"category":4`)
}

func TestOrderReadResponseTotals(t *testing.T) {
	food := pizza()
	order := models.Order{
		ID:     9,
		Name:   "John Doe",
		Status: models.StatusWaiting,
		OrderingFood: []models.OrderingFood{{
			ID:     11,
			FoodID: food.ID,
			Food:   food,
			SizesForSale: []models.SizeForSale{
				{SizeID: 2, Size: food.Sizes[0], Quantity: 2},
			},
		}},
	}

	raw, err := json.Marshal(NewOrderReadResponse(order))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total_price":19.98`)
	assert.Contains(t, string(raw), `"sizes_for_sale":[{"size":2,"quantity":2}]`)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	lines := body["ordering_food"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, 19.98, line["total_price"])
	assert.Equal(t, "Pizza", line["food"].(map[string]any)["name"])
}

func TestEmptyOrderTotalIsZero(t *testing.T) {
	raw, err := json.Marshal(NewOrderReadResponse(models.Order{}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total_price":0.00`)
	assert.Contains(t, string(raw), `"ordering_food":[]`)
}

func TestQuantityOrDefault(t *testing.T) {
	assert.Equal(t, uint(1), SizeSelectionRequest{Size: 1}.QuantityOrDefault())
	three := 3
	assert.Equal(t, uint(3), SizeSelectionRequest{Size: 1, Quantity: &three}.QuantityOrDefault())
}
