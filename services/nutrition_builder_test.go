package services

import (
	"strings"
	"testing"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBMR(t *testing.T) {
	profile := baseProfile()
	// 10*68 + 6.25*168 - 5*28 - 161
	assert.InDelta(t, 1429.0, EstimateBMR(profile), 0.001)
}

func TestTargetCalories(t *testing.T) {
	t.Run("lose with light activity", func(t *testing.T) {
		// 1429 * 1.45 * 0.82, rounded
		assert.Equal(t, 1699, TargetCalories(baseProfile()))
	})

	t.Run("gain raises the target above maintenance", func(t *testing.T) {
		maintain := baseProfile()
		maintain.Goal = models.GoalMaintain
		gain := baseProfile()
		gain.Goal = models.GoalGain
		assert.Greater(t, TargetCalories(gain), TargetCalories(maintain))
		assert.Greater(t, TargetCalories(maintain), TargetCalories(baseProfile()))
	})
}

func TestComputeTargets(t *testing.T) {
	profile := baseProfile()
	target := TargetCalories(profile)
	targets := computeTargets(profile, target)

	t.Run("tier calorie scaling", func(t *testing.T) {
		assert.Equal(t, target, targets[models.DayMid].calories)
		assert.Equal(t, 1461, targets[models.DayLow].calories)  // round(1699*0.86)
		assert.Equal(t, 1869, targets[models.DayHigh].calories) // round(1699*1.10)
	})

	t.Run("protein and fats per kilogram", func(t *testing.T) {
		assert.Equal(t, 122, targets[models.DayMid].protein) // 1.8 g/kg at 68 kg
		assert.Equal(t, 61, targets[models.DayMid].fats)     // 0.9 g/kg for fat loss
	})

	t.Run("gain bumps protein to two grams per kilogram", func(t *testing.T) {
		gain := baseProfile()
		gain.Goal = models.GoalGain
		gainTargets := computeTargets(gain, TargetCalories(gain))
		assert.Equal(t, 136, gainTargets[models.DayMid].protein)
	})

	t.Run("hashimoto adds five grams of fat", func(t *testing.T) {
		hashi := baseProfile()
		hashi.HealthConditions = []models.HealthCondition{models.ConditionHashimoto}
		hashiTargets := computeTargets(hashi, target)
		assert.Equal(t, targets[models.DayMid].fats+5, hashiTargets[models.DayMid].fats)
	})

	t.Run("insulin resistance trims carbs", func(t *testing.T) {
		ir := baseProfile()
		ir.HealthConditions = []models.HealthCondition{models.ConditionIR}
		irTargets := computeTargets(ir, target)
		assert.Less(t, irTargets[models.DayMid].carbs, targets[models.DayMid].carbs)
	})
}

func weekRotation() []models.DayIntensity {
	return []models.DayIntensity{
		models.DayHigh, models.DayLow, models.DayHigh, models.DayLow,
		models.DayMid, models.DayLow, models.DayLow,
	}
}

func TestBuildNutrition(t *testing.T) {
	profile := baseProfile()
	target := TargetCalories(profile)

	t.Run("seven day plan follows the rotation", func(t *testing.T) {
		plan := BuildNutrition(profile, target, weekRotation())
		assert.Len(t, plan.WeeklyPlan, 7)
		for index, day := range plan.WeeklyPlan {
			assert.Equal(t, weekRotation()[index], day.DayType)
			assert.Equal(t, index, day.DayIndex)
			assert.NotEmpty(t, day.Meals)
			assert.NotEmpty(t, day.Swaps)
		}
	})

	t.Run("meal counts per day intensity", func(t *testing.T) {
		plan := BuildNutrition(profile, target, weekRotation())
		for _, day := range plan.WeeklyPlan {
			switch day.DayType {
			case models.DayLow:
				assert.Len(t, day.Meals, 3)
			case models.DayMid:
				assert.Len(t, day.Meals, 4)
			case models.DayHigh:
				assert.Len(t, day.Meals, 5)
			}
		}
	})

	t.Run("day totals equal the sum of meal macros", func(t *testing.T) {
		plan := BuildNutrition(profile, target, weekRotation())
		for _, day := range plan.WeeklyPlan {
			var calories, protein, carbs, fats float64
			for _, meal := range day.Meals {
				calories += meal.Calories
				protein += meal.Protein
				carbs += meal.Carbs
				fats += meal.Fats
			}
			assert.InDelta(t, calories, float64(day.Calories), 0.51)
			assert.InDelta(t, protein, float64(day.Protein), 0.51)
			assert.InDelta(t, carbs, float64(day.Carbs), 0.51)
			assert.InDelta(t, fats, float64(day.Fats), 0.51)
		}
	})

	t.Run("breakfasts stay unique across the week", func(t *testing.T) {
		plan := BuildNutrition(profile, target, weekRotation())
		seen := make(map[string]bool)
		for _, day := range plan.WeeklyPlan {
			for _, meal := range day.Meals {
				if meal.MealType != models.MealBreakfast {
					continue
				}
				assert.False(t, seen[meal.ID], "breakfast %s repeated before pool exhaustion", meal.ID)
				seen[meal.ID] = true
			}
		}
	})

	t.Run("allergies exclude every matching meal", func(t *testing.T) {
		allergic := baseProfile()
		allergic.Allergies = []string{"losos"}
		plan := BuildNutrition(allergic, target, weekRotation())
		for _, day := range plan.WeeklyPlan {
			for _, meal := range day.Meals {
				for _, ingredient := range meal.Ingredients {
					assert.NotContains(t, strings.ToLower(ingredient.Name), "losos",
						"meal %s contains an allergen", meal.ID)
				}
			}
		}
	})

	t.Run("vegetarian preference filters diet types", func(t *testing.T) {
		veggie := baseProfile()
		veggie.DietPreference = models.DietVegetarian
		plan := BuildNutrition(veggie, target, weekRotation())
		for _, day := range plan.WeeklyPlan {
			for _, meal := range day.Meals {
				allowed := false
				for _, dietType := range meal.DietTypes {
					if dietType == models.DietTypeVegetarian || dietType == models.DietTypeMixed {
						allowed = true
					}
				}
				assert.True(t, allowed, "meal %s does not fit a vegetarian plan", meal.ID)
			}
		}
	})

	t.Run("plan by day type covers all three tiers", func(t *testing.T) {
		plan := BuildNutrition(profile, target, weekRotation())
		assert.Contains(t, plan.PlanByDayType, models.DayLow)
		assert.Contains(t, plan.PlanByDayType, models.DayMid)
		assert.Contains(t, plan.PlanByDayType, models.DayHigh)
	})

	t.Run("all-low rotation still yields mid and high templates", func(t *testing.T) {
		allLow := make([]models.DayIntensity, 7)
		for i := range allLow {
			allLow[i] = models.DayLow
		}
		plan := BuildNutrition(profile, target, allLow)
		assert.Contains(t, plan.PlanByDayType, models.DayMid)
		assert.Contains(t, plan.PlanByDayType, models.DayHigh)
		assert.NotEmpty(t, plan.PlanByDayType[models.DayHigh].Meals)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		first := BuildNutrition(profile, target, weekRotation())
		second := BuildNutrition(profile, target, weekRotation())
		assert.Equal(t, first, second)
	})
}

func TestScoreMealForDay(t *testing.T) {
	profile := baseProfile()
	meal := models.MealRecipe{
		ID:       "test",
		Calories: 500,
		Tags:     []string{"low-calorie"},
	}

	t.Run("closer calories score lower", func(t *testing.T) {
		near := scoreMealForDay(meal, 510, models.DayMid, profile)
		far := scoreMealForDay(meal, 900, models.DayMid, profile)
		assert.Less(t, near, far)
	})

	t.Run("day tag rewards the matching tier", func(t *testing.T) {
		onLow := scoreMealForDay(meal, 500, models.DayLow, profile)
		onMid := scoreMealForDay(meal, 500, models.DayMid, profile)
		assert.Equal(t, -30.0, onLow)
		assert.Equal(t, 0.0, onMid)
	})

	t.Run("missing condition tags penalize the meal", func(t *testing.T) {
		sick := baseProfile()
		sick.HealthConditions = []models.HealthCondition{models.ConditionPCOS}
		plain := scoreMealForDay(meal, 500, models.DayMid, sick)
		tagged := meal
		tagged.Tags = append([]string{"pcos-friendly"}, meal.Tags...)
		friendly := scoreMealForDay(tagged, 500, models.DayMid, sick)
		assert.Greater(t, plain, friendly)
	})
}
