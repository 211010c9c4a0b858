package models

// MealType is the slot a recipe fits in a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealDessert   MealType = "dessert"
)

// DietType tags a recipe with the eating styles it is compatible with.
type DietType string

const (
	DietTypeOmnivore    DietType = "omnivore"
	DietTypePescatarian DietType = "pescatarian"
	DietTypeVegetarian  DietType = "vegetarian"
	DietTypeMixed       DietType = "mixed"
	DietTypeKeto        DietType = "keto"
	DietTypeCarnivore   DietType = "carnivore"
)

// DayIntensity is the calorie/training tier for a calendar day.
type DayIntensity string

const (
	DayLow  DayIntensity = "low"
	DayMid  DayIntensity = "mid"
	DayHigh DayIntensity = "high"
)

// Ingredient is one recipe component with its macro breakdown.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MealRecipe is a static catalog entry.
type MealRecipe struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	MealType     MealType     `json:"mealType"`
	DietTypes    []DietType   `json:"dietTypes"`
	Calories     float64      `json:"calories"`
	Protein      float64      `json:"protein"`
	Carbs        float64      `json:"carbs"`
	Fats         float64      `json:"fats"`
	Tags         []string     `json:"tags"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}

// MealSuggestion is a quick swap idea shown next to a day's meals.
type MealSuggestion struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// DailyNutritionPlan is one day's meals and totals. Totals equal the
// rounded sum of the constituent meals' macros.
type DailyNutritionPlan struct {
	DayType  DayIntensity     `json:"dayType"`
	DayIndex int              `json:"dayIndex"`
	DayName  string           `json:"dayName,omitempty"`
	Calories int              `json:"calories"`
	Protein  int              `json:"protein"`
	Carbs    int              `json:"carbs"`
	Fats     int              `json:"fats"`
	Meals    []MealRecipe     `json:"meals"`
	Swaps    []MealSuggestion `json:"swaps"`
}

// NutritionPlan groups the weekly rotation output.
type NutritionPlan struct {
	Rotation      []DayIntensity                      `json:"rotation"` // 7 entries
	PlanByDayType map[DayIntensity]DailyNutritionPlan `json:"planByDayType"`
	WeeklyPlan    []DailyNutritionPlan                `json:"weeklyPlan"` // 7 entries
}
