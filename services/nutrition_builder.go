package services

import (
	"math"
	"sort"
	"strings"

	"github.com/CiraLoC/Fitkofer-Srpski-20.10/data"
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.35,
	models.ActivityLight:     1.45,
	models.ActivityModerate:  1.55,
	models.ActivityHigh:      1.70,
}

var goalAdjustments = map[models.Goal]float64{
	models.GoalLose:     -0.18,
	models.GoalMaintain: 0,
	models.GoalGain:     0.12,
}

var dayLabels = [7]string{
	"Ponedeljak", "Utorak", "Sreda", "Četvrtak", "Petak", "Subota", "Nedelja",
}

// mealSlot is one (meal type, share of daily calories) pair.
type mealSlot struct {
	mealType models.MealType
	ratio    float64
}

// mealDistribution decides meal count and per-slot calorie targets for
// each day intensity.
var mealDistribution = map[models.DayIntensity][]mealSlot{
	models.DayLow: {
		{models.MealBreakfast, 0.30},
		{models.MealLunch, 0.40},
		{models.MealDinner, 0.30},
	},
	models.DayMid: {
		{models.MealBreakfast, 0.28},
		{models.MealLunch, 0.34},
		{models.MealDinner, 0.28},
		{models.MealSnack, 0.10},
	},
	models.DayHigh: {
		{models.MealBreakfast, 0.27},
		{models.MealLunch, 0.33},
		{models.MealDinner, 0.25},
		{models.MealSnack, 0.08},
		{models.MealDessert, 0.07},
	},
}

// EstimateBMR computes basal metabolic rate via Mifflin-St Jeor.
// The -161 offset is applied for every profile; see DESIGN.md.
func EstimateBMR(profile models.UserProfile) float64 {
	return 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age) - 161
}

// TargetCalories derives the mid-tier daily calorie target from BMR,
// activity multiplier and goal adjustment.
func TargetCalories(profile models.UserProfile) int {
	tdee := EstimateBMR(profile) * activityMultipliers[profile.ActivityLevel]
	return int(math.Round(tdee * (1 + goalAdjustments[profile.Goal])))
}

func hasCondition(profile models.UserProfile, condition models.HealthCondition) bool {
	for _, c := range profile.HealthConditions {
		if c == condition {
			return true
		}
	}
	return false
}

// macroTargets is the per-day-type calorie and macro target table.
type macroTargets struct {
	calories int
	protein  int
	carbs    int
	fats     int
}

func computeTargets(profile models.UserProfile, weeklyCalories int) map[models.DayIntensity]macroTargets {
	proteinPerKg := 1.8
	if profile.Goal == models.GoalGain {
		proteinPerKg = 2.0
	}
	baseProtein := proteinPerKg * profile.WeightKg

	fatsPerKg := 1.0
	switch profile.Goal {
	case models.GoalLose:
		fatsPerKg = 0.9
	case models.GoalGain:
		fatsPerKg = 1.1
	}
	baseFats := fatsPerKg * profile.WeightKg
	if hasCondition(profile, models.ConditionHashimoto) {
		baseFats += 5
	}

	remaining := math.Max(float64(weeklyCalories)-(baseProtein*4+baseFats*9), 120)
	baseCarbs := remaining / 4
	if hasCondition(profile, models.ConditionIR) || hasCondition(profile, models.ConditionPCOS) {
		baseCarbs *= 0.95
	}

	round := func(v float64) int { return int(math.Round(v)) }
	return map[models.DayIntensity]macroTargets{
		models.DayLow: {
			calories: round(float64(weeklyCalories) * 0.86),
			protein:  round(baseProtein),
			carbs:    round(baseCarbs * 0.82),
			fats:     round(baseFats * 1.05),
		},
		models.DayMid: {
			calories: weeklyCalories,
			protein:  round(baseProtein),
			carbs:    round(baseCarbs),
			fats:     round(baseFats),
		},
		models.DayHigh: {
			calories: round(float64(weeklyCalories) * 1.10),
			protein:  round(baseProtein * 1.05),
			carbs:    round(baseCarbs * 1.10),
			fats:     round(baseFats * 0.95),
		},
	}
}

// matchesRestrictions rejects any meal whose ingredient list contains
// an allergy or disliked-food term (case-insensitive substring).
func matchesRestrictions(profile models.UserProfile, meal models.MealRecipe) bool {
	names := make([]string, 0, len(meal.Ingredients))
	for _, ingredient := range meal.Ingredients {
		names = append(names, strings.ToLower(ingredient.Name))
	}
	joined := strings.Join(names, " ")

	containsAny := func(terms []string) bool {
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term != "" && strings.Contains(joined, term) {
				return true
			}
		}
		return false
	}
	return !containsAny(profile.Allergies) && !containsAny(profile.DislikedFoods)
}

// allowedDietTypes maps each preference to the recipe diet tags it accepts.
var allowedDietTypes = map[models.DietPreference][]models.DietType{
	models.DietVegetarian:  {models.DietTypeVegetarian, models.DietTypeMixed},
	models.DietPescatarian: {models.DietTypePescatarian, models.DietTypeMixed, models.DietTypeVegetarian},
	models.DietKeto:        {models.DietTypeKeto, models.DietTypeCarnivore},
	models.DietCarnivore:   {models.DietTypeCarnivore},
	models.DietMixed:       {models.DietTypeMixed, models.DietTypeOmnivore, models.DietTypePescatarian, models.DietTypeVegetarian},
	models.DietOmnivore:    {models.DietTypeOmnivore, models.DietTypeMixed},
}

func filterMealsByPreference(preference models.DietPreference, candidates []models.MealRecipe) []models.MealRecipe {
	allowed, ok := allowedDietTypes[preference]
	if !ok {
		allowed = allowedDietTypes[models.DietOmnivore]
	}
	filtered := make([]models.MealRecipe, 0, len(candidates))
	for _, meal := range candidates {
		for _, dietType := range meal.DietTypes {
			keep := false
			for _, a := range allowed {
				if dietType == a {
					keep = true
					break
				}
			}
			if keep {
				filtered = append(filtered, meal)
				break
			}
		}
	}
	return filtered
}

func mealMatchesCondition(meal models.MealRecipe, condition string) bool {
	for _, tag := range meal.Tags {
		if strings.Contains(strings.ToLower(tag), condition) {
			return true
		}
	}
	return false
}

// filterMealsByHealth prefers meals tagged for ALL of the user's
// conditions, falls back to ANY, and finally to the unfiltered input
// when either pass leaves fewer than 6 candidates. The graceful
// degradation keeps the candidate pool from collapsing to nothing.
func filterMealsByHealth(profile models.UserProfile, candidates []models.MealRecipe) []models.MealRecipe {
	if len(profile.HealthConditions) == 0 {
		return candidates
	}
	conditions := make([]string, 0, len(profile.HealthConditions))
	for _, condition := range profile.HealthConditions {
		conditions = append(conditions, strings.ToLower(string(condition)))
	}

	matchesAll := func(meal models.MealRecipe) bool {
		for _, condition := range conditions {
			if !mealMatchesCondition(meal, condition) {
				return false
			}
		}
		return true
	}
	matchesAnyOf := func(meal models.MealRecipe) bool {
		for _, condition := range conditions {
			if mealMatchesCondition(meal, condition) {
				return true
			}
		}
		return false
	}

	strict := make([]models.MealRecipe, 0, len(candidates))
	partial := make([]models.MealRecipe, 0, len(candidates))
	for _, meal := range candidates {
		if matchesAll(meal) {
			strict = append(strict, meal)
		}
		if matchesAnyOf(meal) {
			partial = append(partial, meal)
		}
	}
	if len(strict) >= 6 {
		return strict
	}
	if len(partial) >= 6 {
		return partial
	}
	return candidates
}

// scoreMealForDay scores a candidate against a calorie target; lower
// is better. Day-type tags, a high-protein tag and condition tags pull
// the score down; a missing condition match penalizes it.
func scoreMealForDay(meal models.MealRecipe, targetCalories float64, dayType models.DayIntensity, profile models.UserProfile) float64 {
	score := math.Abs(meal.Calories - targetCalories)

	hasTag := func(tag string) bool {
		for _, t := range meal.Tags {
			if t == tag {
				return true
			}
		}
		return false
	}

	switch dayType {
	case models.DayHigh:
		if hasTag("high-calorie") {
			score -= 40
		}
	case models.DayLow:
		if hasTag("low-calorie") {
			score -= 30
		}
	default:
		if hasTag("mid-calorie") {
			score -= 20
		}
	}
	if hasTag("high-protein") {
		score -= 10
	}

	if len(profile.HealthConditions) > 0 {
		all := true
		any := false
		for _, condition := range profile.HealthConditions {
			matched := mealMatchesCondition(meal, strings.ToLower(string(condition)))
			all = all && matched
			any = any || matched
		}
		switch {
		case all:
			score -= 40
		case any:
			score -= 15
		default:
			score += 25
		}
	}
	return score
}

// pickMealForType selects the best-scoring candidate of a meal type,
// preferring meals not yet used anywhere in the weekly plan. usedIDs
// is the accumulator threaded across all seven days; the chosen meal
// is recorded in it. Returns nil when the pool has no candidates of
// the requested type.
func pickMealForType(
	pool []models.MealRecipe,
	mealType models.MealType,
	dayType models.DayIntensity,
	targetCalories float64,
	usedIDs map[string]bool,
	profile models.UserProfile,
) *models.MealRecipe {
	candidates := make([]models.MealRecipe, 0, len(pool))
	for _, meal := range pool {
		if meal.MealType == mealType {
			candidates = append(candidates, meal)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	unused := make([]models.MealRecipe, 0, len(candidates))
	for _, meal := range candidates {
		if !usedIDs[meal.ID] {
			unused = append(unused, meal)
		}
	}
	if len(unused) > 0 {
		candidates = unused
	}

	// Stable sort keeps catalog order on score ties, so output is
	// deterministic for identical inputs.
	sort.SliceStable(candidates, func(i, j int) bool {
		return scoreMealForDay(candidates[i], targetCalories, dayType, profile) <
			scoreMealForDay(candidates[j], targetCalories, dayType, profile)
	})

	chosen := candidates[0]
	usedIDs[chosen.ID] = true
	return &chosen
}

func sumMeals(mealsForDay []models.MealRecipe) (calories, protein, carbs, fats float64) {
	for _, meal := range mealsForDay {
		calories += meal.Calories
		protein += meal.Protein
		carbs += meal.Carbs
		fats += meal.Fats
	}
	return calories, protein, carbs, fats
}

func excludeDesserts(pool []models.MealRecipe) []models.MealRecipe {
	filtered := make([]models.MealRecipe, 0, len(pool))
	for _, meal := range pool {
		if meal.MealType != models.MealDessert {
			filtered = append(filtered, meal)
		}
	}
	return filtered
}

func firstN(pool []models.MealRecipe, n int) []models.MealRecipe {
	if len(pool) < n {
		n = len(pool)
	}
	out := make([]models.MealRecipe, n)
	copy(out, pool[:n])
	return out
}

// BuildNutrition assembles the weekly nutrition plan for a rotation.
// weeklyCalories is the mid-tier daily target; per-tier targets derive
// from it. The candidate pipeline (restrictions → diet → health) runs
// once per plan; each slot falls back health → diet → unrestricted
// until a candidate is found.
func BuildNutrition(profile models.UserProfile, weeklyCalories int, rotation []models.DayIntensity) models.NutritionPlan {
	targets := computeTargets(profile, weeklyCalories)

	basePool := make([]models.MealRecipe, 0, len(data.Meals))
	for _, meal := range data.Meals {
		if matchesRestrictions(profile, meal) {
			basePool = append(basePool, meal)
		}
	}
	dietFiltered := filterMealsByPreference(profile.DietPreference, basePool)
	healthFiltered := filterMealsByHealth(profile, dietFiltered)

	usedIDs := make(map[string]bool)
	weeklyPlan := make([]models.DailyNutritionPlan, 0, len(rotation))
	for index, dayType := range rotation {
		slots := mealDistribution[dayType]
		mealsForDay := make([]models.MealRecipe, 0, len(slots))
		for _, slot := range slots {
			target := float64(targets[dayType].calories) * slot.ratio
			chosen := pickMealForType(healthFiltered, slot.mealType, dayType, target, usedIDs, profile)
			if chosen == nil {
				chosen = pickMealForType(dietFiltered, slot.mealType, dayType, target, usedIDs, profile)
			}
			if chosen == nil {
				chosen = pickMealForType(basePool, slot.mealType, dayType, target, usedIDs, profile)
			}
			if chosen != nil {
				mealsForDay = append(mealsForDay, *chosen)
			}
		}
		if len(mealsForDay) == 0 {
			mealsForDay = firstN(healthFiltered, 3)
		}

		calories, protein, carbs, fats := sumMeals(mealsForDay)
		weeklyPlan = append(weeklyPlan, models.DailyNutritionPlan{
			DayType:  dayType,
			DayIndex: index,
			DayName:  dayLabels[index%7],
			Calories: int(math.Round(calories)),
			Protein:  int(math.Round(protein)),
			Carbs:    int(math.Round(carbs)),
			Fats:     int(math.Round(fats)),
			Meals:    mealsForDay,
			Swaps:    data.MealSwaps,
		})
	}

	planByDayType := make(map[models.DayIntensity]models.DailyNutritionPlan, 3)
	fallbackMeals := map[models.DayIntensity][]models.MealRecipe{
		models.DayLow:  firstN(excludeDesserts(healthFiltered), 3),
		models.DayMid:  firstN(healthFiltered, 4),
		models.DayHigh: firstN(healthFiltered, 5),
	}
	for _, dayType := range []models.DayIntensity{models.DayLow, models.DayMid, models.DayHigh} {
		found := false
		for _, day := range weeklyPlan {
			if day.DayType == dayType {
				planByDayType[dayType] = day
				found = true
				break
			}
		}
		if found {
			continue
		}
		target := targets[dayType]
		planByDayType[dayType] = models.DailyNutritionPlan{
			DayType:  dayType,
			DayIndex: 0,
			DayName:  dayLabels[0],
			Calories: target.calories,
			Protein:  target.protein,
			Carbs:    target.carbs,
			Fats:     target.fats,
			Meals:    fallbackMeals[dayType],
			Swaps:    data.MealSwaps,
		}
	}

	return models.NutritionPlan{
		Rotation:      rotation,
		PlanByDayType: planByDayType,
		WeeklyPlan:    weeklyPlan,
	}
}
