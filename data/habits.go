// Package data holds the static, hand-authored content catalogs the
// plan engine selects from. Catalog order is meaningful: selection is
// deterministic and walks each slice front to back.
package data

import (
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
)

// CoreHabits are included in every generated plan.
var CoreHabits = []models.Habit{
	{
		ID:          "hydration",
		Title:       "Voda 2L",
		Description: "Popij najmanje 8 čaša vode raspoređeno tokom dana.",
		Category:    models.HabitHydration,
	},
	{
		ID:          "sleep-hygiene",
		Title:       "San 7+ h",
		Description: "Fiksiraj vreme spavanja i buđenja, minimum 7 sati sna.",
		Category:    models.HabitSleep,
	},
	{
		ID:          "walk",
		Title:       "Šetnja 6k koraka",
		Description: "Planiraj 2 kraće šetnje po 15 minuta.",
		Category:    models.HabitMobility,
	},
	{
		ID:          "nsdr",
		Title:       "NSDR/Disanje",
		Description: "Izaberi vođenu NSDR audio (5, 10 ili 20 min) prema energiji.",
		Category:    models.HabitMindfulness,
	},
	{
		ID:          "protein",
		Title:       "Protein u svakom obroku",
		Description: "Uključi kvalitetan izvor proteina u sva tri glavna obroka.",
		Category:    models.HabitNutrition,
	},
}

// OptionalHabits are added when the profile signals a need for them.
var OptionalHabits = []models.Habit{
	{
		ID:          "fiber",
		Title:       "Povrće 2x",
		Description: "Dodaj povrće u minimum dva obroka danas.",
		Category:    models.HabitNutrition,
	},
	{
		ID:          "gratitude",
		Title:       "Kratka zahvalnost",
		Description: "Upiši 3 stvari na kojima si zahvalna pre spavanja.",
		Category:    models.HabitMindfulness,
	},
	{
		ID:          "mobility-reset",
		Title:       "Mobilnost 10 min",
		Description: "Krug mobilnosti za kukove i torakalnu kičmu (10 minuta).",
		Category:    models.HabitMobility,
	},
}

// WeeklyChallenge is the static weekly challenge shown with habits.
const WeeklyChallenge = "35k koraka + 3 treninga ove nedelje"
