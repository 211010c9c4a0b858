package data

import (
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
)

// MealSwaps are quick substitution ideas attached to every day plan.
var MealSwaps = []models.MealSuggestion{
	{ID: "swap-protein", Title: "Zameni izvor proteina (piletina ↔ riba ↔ jaja)", Icon: "🍗"},
	{ID: "swap-carb", Title: "Zameni prilog (pirinač ↔ krompir ↔ heljda)", Icon: "🍚"},
	{ID: "swap-veggie", Title: "Povrće po sezoni, ista količina", Icon: "🥦"},
	{ID: "swap-dairy", Title: "Jogurt ↔ kefir ↔ skyr", Icon: "🥛"},
}

// Meals is the full recipe catalog. Calorie-tier tags (low-calorie,
// mid-calorie, high-calorie), high-protein and condition tags
// (ir-friendly, pcos-friendly, hashimoto-friendly) drive scoring.
var Meals = []models.MealRecipe{
	// --- breakfast ---
	{
		ID:        "b-omelet-povrce",
		Title:     "Omlet sa povrćem i sirom",
		MealType:  models.MealBreakfast,
		DietTypes: []models.DietType{models.DietTypeOmnivore, models.DietTypeMixed, models.DietTypeVegetarian, models.DietTypeKeto},
		Calories:  420, Protein: 28, Carbs: 8, Fats: 30,
		Tags: []string{"mid-calorie", "high-protein", "ir-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "jaja", Quantity: 3, Unit: "kom", Calories: 210, Protein: 18, Carbs: 1, Fats: 15},
			{Name: "sir feta", Quantity: 40, Unit: "g", Calories: 110, Protein: 6, Carbs: 1, Fats: 9},
			{Name: "spanać", Quantity: 80, Unit: "g", Calories: 20, Protein: 2, Carbs: 3, Fats: 0},
			{Name: "maslinovo ulje", Quantity: 8, Unit: "g", Calories: 80, Protein: 0, Carbs: 0, Fats: 9},
		},
		Instructions: []string{
			"Umuti jaja sa prstohvatom soli.",
			"Prodinstaj spanać na ulju pa dodaj jaja i sir.",
			"Peci na srednjoj temperaturi dok se ne stegne.",
		},
	},
	{
		ID:        "b-ovsena-kasa",
		Title:     "Ovsena kaša sa borovnicama",
		MealType:  models.MealBreakfast,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed, models.DietTypeOmnivore},
		Calories:  380, Protein: 14, Carbs: 58, Fats: 10,
		Tags: []string{"mid-calorie", "hashimoto-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "ovsene pahuljice", Quantity: 60, Unit: "g", Calories: 230, Protein: 8, Carbs: 40, Fats: 4},
			{Name: "mleko", Quantity: 200, Unit: "ml", Calories: 100, Protein: 6, Carbs: 10, Fats: 4},
			{Name: "borovnice", Quantity: 80, Unit: "g", Calories: 45, Protein: 0, Carbs: 11, Fats: 0},
		},
		Instructions: []string{
			"Kuvaj pahuljice u mleku 5 minuta.",
			"Dodaj borovnice pred kraj.",
		},
	},
	{
		ID:        "b-grcki-jogurt",
		Title:     "Grčki jogurt sa medom i voćem",
		MealType:  models.MealBreakfast,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed, models.DietTypeOmnivore},
		Calories:  320, Protein: 22, Carbs: 38, Fats: 8,
		Tags: []string{"low-calorie", "high-protein", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "grčki jogurt", Quantity: 200, Unit: "g", Calories: 180, Protein: 20, Carbs: 8, Fats: 8},
			{Name: "med", Quantity: 15, Unit: "g", Calories: 45, Protein: 0, Carbs: 12, Fats: 0},
			{Name: "jagode", Quantity: 120, Unit: "g", Calories: 95, Protein: 2, Carbs: 18, Fats: 0},
		},
		Instructions: []string{
			"Pomešaj jogurt sa medom.",
			"Dodaj iseckano voće.",
		},
	},
	{
		ID:        "b-tost-losos",
		Title:     "Integralni tost sa dimljenim lososom",
		MealType:  models.MealBreakfast,
		DietTypes: []models.DietType{models.DietTypePescatarian, models.DietTypeMixed},
		Calories:  450, Protein: 26, Carbs: 40, Fats: 20,
		Tags: []string{"mid-calorie", "high-protein", "hashimoto-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "integralni hleb", Quantity: 80, Unit: "g", Calories: 200, Protein: 8, Carbs: 38, Fats: 2},
			{Name: "dimljeni losos", Quantity: 80, Unit: "g", Calories: 140, Protein: 16, Carbs: 0, Fats: 8},
			{Name: "krem sir", Quantity: 40, Unit: "g", Calories: 110, Protein: 2, Carbs: 2, Fats: 10},
		},
		Instructions: []string{
			"Tostiraj hleb i premaži krem sirom.",
			"Dodaj losos i malo limunovog soka.",
		},
	},
	{
		ID:        "b-chia-puding",
		Title:     "Chia puding sa malinama",
		MealType:  models.MealBreakfast,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed},
		Calories:  300, Protein: 11, Carbs: 28, Fats: 16,
		Tags: []string{"low-calorie", "ir-friendly", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "chia semenke", Quantity: 35, Unit: "g", Calories: 170, Protein: 6, Carbs: 15, Fats: 11},
			{Name: "bademovo mleko", Quantity: 200, Unit: "ml", Calories: 60, Protein: 2, Carbs: 6, Fats: 4},
			{Name: "maline", Quantity: 100, Unit: "g", Calories: 70, Protein: 3, Carbs: 7, Fats: 1},
		},
		Instructions: []string{
			"Pomešaj semenke i mleko pa ostavi preko noći.",
			"Ujutru dodaj maline.",
		},
	},
	{
		ID:        "b-kajgana-slanina",
		Title:     "Kajgana sa slaninom",
		MealType:  models.MealBreakfast,
		DietTypes: []models.DietType{models.DietTypeKeto, models.DietTypeCarnivore, models.DietTypeOmnivore},
		Calories:  560, Protein: 30, Carbs: 3, Fats: 48,
		Tags: []string{"high-calorie"},
		Ingredients: []models.Ingredient{
			{Name: "jaja", Quantity: 3, Unit: "kom", Calories: 210, Protein: 18, Carbs: 1, Fats: 15},
			{Name: "slanina", Quantity: 60, Unit: "g", Calories: 270, Protein: 9, Carbs: 1, Fats: 26},
			{Name: "puter", Quantity: 10, Unit: "g", Calories: 75, Protein: 0, Carbs: 0, Fats: 8},
		},
		Instructions: []string{
			"Ispeci slaninu do hrskavosti.",
			"Na isti tiganj dodaj jaja i puter, mešaj na tihoj vatri.",
		},
	},
	{
		ID:        "b-proteinske-palacinke",
		Title:     "Proteinske palačinke sa bananom",
		MealType:  models.MealBreakfast,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed, models.DietTypeOmnivore},
		Calories:  520, Protein: 34, Carbs: 60, Fats: 14,
		Tags: []string{"high-calorie", "high-protein"},
		Ingredients: []models.Ingredient{
			{Name: "ovsene pahuljice", Quantity: 50, Unit: "g", Calories: 190, Protein: 7, Carbs: 33, Fats: 3},
			{Name: "protein surutke", Quantity: 30, Unit: "g", Calories: 115, Protein: 24, Carbs: 2, Fats: 1},
			{Name: "banana", Quantity: 120, Unit: "g", Calories: 105, Protein: 1, Carbs: 24, Fats: 0},
			{Name: "jaja", Quantity: 1, Unit: "kom", Calories: 70, Protein: 6, Carbs: 0, Fats: 5},
		},
		Instructions: []string{
			"Izblendaj sve sastojke u glatku smesu.",
			"Peci male palačinke po 2 minuta sa svake strane.",
		},
	},
	// --- lunch ---
	{
		ID:        "l-piletina-pirinac",
		Title:     "Piletina sa pirinčem i brokolijem",
		MealType:  models.MealLunch,
		DietTypes: []models.DietType{models.DietTypeOmnivore, models.DietTypeMixed},
		Calories:  620, Protein: 45, Carbs: 65, Fats: 16,
		Tags: []string{"mid-calorie", "high-protein", "ir-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "pileći file", Quantity: 180, Unit: "g", Calories: 290, Protein: 40, Carbs: 0, Fats: 6},
			{Name: "pirinač", Quantity: 70, Unit: "g", Calories: 250, Protein: 5, Carbs: 55, Fats: 1},
			{Name: "brokoli", Quantity: 150, Unit: "g", Calories: 50, Protein: 4, Carbs: 8, Fats: 0},
			{Name: "maslinovo ulje", Quantity: 8, Unit: "g", Calories: 80, Protein: 0, Carbs: 0, Fats: 9},
		},
		Instructions: []string{
			"Skuvaj pirinač i blanširaj brokoli.",
			"Ispeci piletinu na ulju sa začinima.",
		},
	},
	{
		ID:        "l-losos-povrce",
		Title:     "Pečeni losos sa grilovanim povrćem",
		MealType:  models.MealLunch,
		DietTypes: []models.DietType{models.DietTypePescatarian, models.DietTypeMixed, models.DietTypeKeto},
		Calories:  560, Protein: 38, Carbs: 18, Fats: 38,
		Tags: []string{"mid-calorie", "high-protein", "hashimoto-friendly", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "losos", Quantity: 180, Unit: "g", Calories: 370, Protein: 36, Carbs: 0, Fats: 24},
			{Name: "tikvice", Quantity: 150, Unit: "g", Calories: 25, Protein: 2, Carbs: 5, Fats: 0},
			{Name: "paprika", Quantity: 100, Unit: "g", Calories: 30, Protein: 1, Carbs: 6, Fats: 0},
			{Name: "maslinovo ulje", Quantity: 12, Unit: "g", Calories: 110, Protein: 0, Carbs: 0, Fats: 12},
		},
		Instructions: []string{
			"Peci losos 12 minuta na 200°C.",
			"Griluj povrće i prelij uljem.",
		},
	},
	{
		ID:        "l-juneci-gulas",
		Title:     "Juneći gulaš",
		MealType:  models.MealLunch,
		DietTypes: []models.DietType{models.DietTypeCarnivore, models.DietTypeKeto, models.DietTypeOmnivore},
		Calories:  650, Protein: 48, Carbs: 12, Fats: 44,
		Tags: []string{"high-calorie", "high-protein"},
		Ingredients: []models.Ingredient{
			{Name: "junetina", Quantity: 200, Unit: "g", Calories: 440, Protein: 44, Carbs: 0, Fats: 30},
			{Name: "crni luk", Quantity: 80, Unit: "g", Calories: 35, Protein: 1, Carbs: 8, Fats: 0},
			{Name: "svinjska mast", Quantity: 15, Unit: "g", Calories: 135, Protein: 0, Carbs: 0, Fats: 15},
		},
		Instructions: []string{
			"Prodinstaj luk na masti pa dodaj meso.",
			"Krčkaj poklopljeno 90 minuta uz dolivanje vode.",
		},
	},
	{
		ID:        "l-socivo-curry",
		Title:     "Curry od sočiva sa spanaćem",
		MealType:  models.MealLunch,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed},
		Calories:  480, Protein: 24, Carbs: 70, Fats: 10,
		Tags: []string{"mid-calorie", "ir-friendly", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "crveno sočivo", Quantity: 90, Unit: "g", Calories: 310, Protein: 22, Carbs: 52, Fats: 1},
			{Name: "spanać", Quantity: 100, Unit: "g", Calories: 25, Protein: 3, Carbs: 4, Fats: 0},
			{Name: "kokosovo mleko", Quantity: 80, Unit: "ml", Calories: 145, Protein: 1, Carbs: 3, Fats: 14},
		},
		Instructions: []string{
			"Kuvaj sočivo sa curry začinom 15 minuta.",
			"Umešaj spanać i kokosovo mleko pred kraj.",
		},
	},
	{
		ID:        "l-curetina-wrap",
		Title:     "Wrap sa ćuretinom i jogurt sosom",
		MealType:  models.MealLunch,
		DietTypes: []models.DietType{models.DietTypeOmnivore, models.DietTypeMixed},
		Calories:  450, Protein: 35, Carbs: 42, Fats: 15,
		Tags: []string{"low-calorie", "high-protein"},
		Ingredients: []models.Ingredient{
			{Name: "ćureći file", Quantity: 140, Unit: "g", Calories: 200, Protein: 32, Carbs: 0, Fats: 7},
			{Name: "tortilja", Quantity: 60, Unit: "g", Calories: 180, Protein: 5, Carbs: 34, Fats: 3},
			{Name: "jogurt", Quantity: 60, Unit: "g", Calories: 40, Protein: 2, Carbs: 4, Fats: 2},
			{Name: "zelena salata", Quantity: 50, Unit: "g", Calories: 10, Protein: 1, Carbs: 2, Fats: 0},
		},
		Instructions: []string{
			"Ispeci trakice ćuretine.",
			"Složi sve u tortilju i prelij jogurt sosom.",
		},
	},
	{
		ID:        "l-tuna-salata",
		Title:     "Obilna tuna salata",
		MealType:  models.MealLunch,
		DietTypes: []models.DietType{models.DietTypePescatarian, models.DietTypeMixed, models.DietTypeKeto},
		Calories:  420, Protein: 34, Carbs: 14, Fats: 26,
		Tags: []string{"low-calorie", "high-protein", "ir-friendly", "pcos-friendly", "hashimoto-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "tunjevina", Quantity: 140, Unit: "g", Calories: 150, Protein: 33, Carbs: 0, Fats: 2},
			{Name: "masline", Quantity: 30, Unit: "g", Calories: 45, Protein: 0, Carbs: 1, Fats: 5},
			{Name: "jaja", Quantity: 1, Unit: "kom", Calories: 70, Protein: 6, Carbs: 0, Fats: 5},
			{Name: "miks salata", Quantity: 120, Unit: "g", Calories: 25, Protein: 2, Carbs: 4, Fats: 0},
			{Name: "maslinovo ulje", Quantity: 14, Unit: "g", Calories: 130, Protein: 0, Carbs: 0, Fats: 14},
		},
		Instructions: []string{
			"Pomešaj sve sastojke u velikoj činiji.",
			"Začini uljem, limunom i biberom.",
		},
	},
	{
		ID:        "l-pileci-djuvec",
		Title:     "Pileći đuveč",
		MealType:  models.MealLunch,
		DietTypes: []models.DietType{models.DietTypeOmnivore, models.DietTypeMixed},
		Calories:  700, Protein: 42, Carbs: 78, Fats: 22,
		Tags: []string{"high-calorie", "high-protein"},
		Ingredients: []models.Ingredient{
			{Name: "pileći batak bez kosti", Quantity: 180, Unit: "g", Calories: 320, Protein: 34, Carbs: 0, Fats: 20},
			{Name: "pirinač", Quantity: 80, Unit: "g", Calories: 285, Protein: 6, Carbs: 63, Fats: 1},
			{Name: "paradajz", Quantity: 120, Unit: "g", Calories: 25, Protein: 1, Carbs: 5, Fats: 0},
			{Name: "grašak", Quantity: 80, Unit: "g", Calories: 65, Protein: 4, Carbs: 10, Fats: 0},
		},
		Instructions: []string{
			"Prodinstaj meso pa dodaj povrće i pirinač.",
			"Zalij vodom i peci 40 minuta na 180°C.",
		},
	},
	// --- dinner ---
	{
		ID:        "d-piletina-batat",
		Title:     "Piletina iz rerne sa batatom",
		MealType:  models.MealDinner,
		DietTypes: []models.DietType{models.DietTypeOmnivore, models.DietTypeMixed},
		Calories:  520, Protein: 40, Carbs: 45, Fats: 18,
		Tags: []string{"mid-calorie", "high-protein", "ir-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "pileći file", Quantity: 160, Unit: "g", Calories: 260, Protein: 36, Carbs: 0, Fats: 5},
			{Name: "batat", Quantity: 200, Unit: "g", Calories: 170, Protein: 3, Carbs: 40, Fats: 0},
			{Name: "maslinovo ulje", Quantity: 10, Unit: "g", Calories: 90, Protein: 0, Carbs: 0, Fats: 10},
		},
		Instructions: []string{
			"Peci piletinu i kockice batata 30 minuta na 200°C.",
			"Pospi ruzmarinom pre serviranja.",
		},
	},
	{
		ID:        "d-oslic-blitva",
		Title:     "Oslić sa blitvom i krompirom",
		MealType:  models.MealDinner,
		DietTypes: []models.DietType{models.DietTypePescatarian, models.DietTypeMixed},
		Calories:  430, Protein: 34, Carbs: 35, Fats: 16,
		Tags: []string{"low-calorie", "hashimoto-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "oslić", Quantity: 180, Unit: "g", Calories: 160, Protein: 31, Carbs: 0, Fats: 2},
			{Name: "blitva", Quantity: 150, Unit: "g", Calories: 30, Protein: 3, Carbs: 6, Fats: 0},
			{Name: "krompir", Quantity: 150, Unit: "g", Calories: 115, Protein: 2, Carbs: 26, Fats: 0},
			{Name: "maslinovo ulje", Quantity: 14, Unit: "g", Calories: 130, Protein: 0, Carbs: 0, Fats: 14},
		},
		Instructions: []string{
			"Skuvaj krompir i blitvu.",
			"Oslića ispeci na tiganju po 4 minuta sa svake strane.",
		},
	},
	{
		ID:        "d-biftek",
		Title:     "Biftek sa puterom",
		MealType:  models.MealDinner,
		DietTypes: []models.DietType{models.DietTypeCarnivore, models.DietTypeKeto},
		Calories:  640, Protein: 52, Carbs: 2, Fats: 46,
		Tags: []string{"high-calorie", "high-protein"},
		Ingredients: []models.Ingredient{
			{Name: "biftek", Quantity: 220, Unit: "g", Calories: 480, Protein: 50, Carbs: 0, Fats: 30},
			{Name: "puter", Quantity: 20, Unit: "g", Calories: 150, Protein: 0, Carbs: 0, Fats: 16},
		},
		Instructions: []string{
			"Peci biftek po 3-4 minuta sa svake strane.",
			"Ostavi da odmori 5 minuta pod puterom.",
		},
	},
	{
		ID:        "d-tofu-vok",
		Title:     "Tofu sa povrćem iz voka",
		MealType:  models.MealDinner,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed},
		Calories:  410, Protein: 24, Carbs: 30, Fats: 22,
		Tags: []string{"low-calorie", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "tofu", Quantity: 150, Unit: "g", Calories: 180, Protein: 18, Carbs: 4, Fats: 11},
			{Name: "mešano povrće za vok", Quantity: 250, Unit: "g", Calories: 90, Protein: 5, Carbs: 16, Fats: 1},
			{Name: "susamovo ulje", Quantity: 10, Unit: "g", Calories: 90, Protein: 0, Carbs: 0, Fats: 10},
			{Name: "soja sos", Quantity: 15, Unit: "ml", Calories: 10, Protein: 1, Carbs: 1, Fats: 0},
		},
		Instructions: []string{
			"Zapeci kockice tofua do zlatne boje.",
			"Dodaj povrće i sos, mešaj 5 minuta na jakoj vatri.",
		},
	},
	{
		ID:        "d-punjene-tikvice",
		Title:     "Punjene tikvice sa mlevenim mesom",
		MealType:  models.MealDinner,
		DietTypes: []models.DietType{models.DietTypeOmnivore, models.DietTypeMixed},
		Calories:  490, Protein: 32, Carbs: 24, Fats: 30,
		Tags: []string{"mid-calorie", "ir-friendly", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "tikvice", Quantity: 300, Unit: "g", Calories: 50, Protein: 4, Carbs: 10, Fats: 1},
			{Name: "mleveno meso", Quantity: 150, Unit: "g", Calories: 330, Protein: 27, Carbs: 0, Fats: 24},
			{Name: "paradajz sos", Quantity: 100, Unit: "g", Calories: 40, Protein: 1, Carbs: 8, Fats: 0},
			{Name: "sir", Quantity: 30, Unit: "g", Calories: 70, Protein: 5, Carbs: 1, Fats: 5},
		},
		Instructions: []string{
			"Izdubi tikvice i napuni ih zapečenim mesom.",
			"Prelij sosom, pospi sirom i peci 25 minuta.",
		},
	},
	{
		ID:        "d-belance-omlet",
		Title:     "Omlet od belanaca sa pečurkama",
		MealType:  models.MealDinner,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeKeto, models.DietTypeOmnivore},
		Calories:  380, Protein: 30, Carbs: 10, Fats: 24,
		Tags: []string{"low-calorie", "high-protein", "ir-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "belanca", Quantity: 200, Unit: "g", Calories: 100, Protein: 22, Carbs: 1, Fats: 0},
			{Name: "pečurke", Quantity: 150, Unit: "g", Calories: 35, Protein: 4, Carbs: 5, Fats: 0},
			{Name: "sir", Quantity: 40, Unit: "g", Calories: 95, Protein: 7, Carbs: 1, Fats: 7},
			{Name: "maslinovo ulje", Quantity: 12, Unit: "g", Calories: 110, Protein: 0, Carbs: 0, Fats: 12},
		},
		Instructions: []string{
			"Prodinstaj pečurke.",
			"Dodaj belanca i sir, peci dok se ne stegne.",
		},
	},
	{
		ID:        "d-cureca-sarma",
		Title:     "Sarmice od ćuretine i heljde",
		MealType:  models.MealDinner,
		DietTypes: []models.DietType{models.DietTypeOmnivore, models.DietTypeMixed},
		Calories:  560, Protein: 36, Carbs: 48, Fats: 24,
		Tags: []string{"mid-calorie", "hashimoto-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "mlevena ćuretina", Quantity: 150, Unit: "g", Calories: 230, Protein: 30, Carbs: 0, Fats: 12},
			{Name: "heljda", Quantity: 60, Unit: "g", Calories: 210, Protein: 7, Carbs: 43, Fats: 2},
			{Name: "kiseli kupus", Quantity: 200, Unit: "g", Calories: 50, Protein: 2, Carbs: 9, Fats: 0},
			{Name: "maslinovo ulje", Quantity: 8, Unit: "g", Calories: 75, Protein: 0, Carbs: 0, Fats: 8},
		},
		Instructions: []string{
			"Pomešaj meso i kuvanu heljdu pa zavij u listove kupusa.",
			"Krčkaj poklopljeno 60 minuta.",
		},
	},
	// --- snack ---
	{
		ID:        "s-jabuka-kikiriki",
		Title:     "Jabuka sa puterom od kikirikija",
		MealType:  models.MealSnack,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed, models.DietTypeOmnivore},
		Calories:  220, Protein: 6, Carbs: 28, Fats: 11,
		Tags: []string{"mid-calorie"},
		Ingredients: []models.Ingredient{
			{Name: "jabuka", Quantity: 180, Unit: "g", Calories: 95, Protein: 0, Carbs: 25, Fats: 0},
			{Name: "puter od kikirikija", Quantity: 20, Unit: "g", Calories: 120, Protein: 5, Carbs: 4, Fats: 10},
		},
		Instructions: []string{
			"Iseci jabuku na kriške i umoči u puter od kikirikija.",
		},
	},
	{
		ID:        "s-protein-sejk",
		Title:     "Proteinski šejk sa bananom",
		MealType:  models.MealSnack,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed, models.DietTypeOmnivore},
		Calories:  260, Protein: 28, Carbs: 30, Fats: 3,
		Tags: []string{"high-calorie", "high-protein"},
		Ingredients: []models.Ingredient{
			{Name: "protein surutke", Quantity: 30, Unit: "g", Calories: 115, Protein: 24, Carbs: 2, Fats: 1},
			{Name: "banana", Quantity: 120, Unit: "g", Calories: 105, Protein: 1, Carbs: 24, Fats: 0},
			{Name: "mleko", Quantity: 100, Unit: "ml", Calories: 50, Protein: 3, Carbs: 5, Fats: 2},
		},
		Instructions: []string{
			"Izblendaj sve sastojke sa ledom.",
		},
	},
	{
		ID:        "s-kuvana-jaja",
		Title:     "Dva kuvana jajeta",
		MealType:  models.MealSnack,
		DietTypes: []models.DietType{models.DietTypeKeto, models.DietTypeCarnivore, models.DietTypeOmnivore, models.DietTypeMixed},
		Calories:  140, Protein: 12, Carbs: 1, Fats: 10,
		Tags: []string{"low-calorie", "high-protein", "ir-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "jaja", Quantity: 2, Unit: "kom", Calories: 140, Protein: 12, Carbs: 1, Fats: 10},
		},
		Instructions: []string{
			"Kuvaj jaja 9 minuta, ohladi pod hladnom vodom.",
		},
	},
	{
		ID:        "s-jogurt-orasi",
		Title:     "Jogurt sa orasima",
		MealType:  models.MealSnack,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeKeto, models.DietTypeMixed},
		Calories:  210, Protein: 12, Carbs: 9, Fats: 15,
		Tags: []string{"mid-calorie", "hashimoto-friendly", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "grčki jogurt", Quantity: 150, Unit: "g", Calories: 130, Protein: 11, Carbs: 6, Fats: 7},
			{Name: "orasi", Quantity: 12, Unit: "g", Calories: 80, Protein: 2, Carbs: 2, Fats: 8},
		},
		Instructions: []string{
			"Pospi seckane orahe preko jogurta.",
		},
	},
	{
		ID:        "s-humus-povrce",
		Title:     "Štapići povrća sa humusom",
		MealType:  models.MealSnack,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed},
		Calories:  160, Protein: 6, Carbs: 18, Fats: 8,
		Tags: []string{"low-calorie", "ir-friendly", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "šargarepa", Quantity: 100, Unit: "g", Calories: 40, Protein: 1, Carbs: 9, Fats: 0},
			{Name: "krastavac", Quantity: 100, Unit: "g", Calories: 15, Protein: 1, Carbs: 3, Fats: 0},
			{Name: "humus", Quantity: 40, Unit: "g", Calories: 105, Protein: 4, Carbs: 6, Fats: 8},
		},
		Instructions: []string{
			"Iseci povrće na štapiće i posluži uz humus.",
		},
	},
	// --- dessert ---
	{
		ID:        "x-cokolada-bademi",
		Title:     "Crna čokolada sa bademima",
		MealType:  models.MealDessert,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeKeto, models.DietTypeMixed},
		Calories:  170, Protein: 4, Carbs: 10, Fats: 13,
		Tags: []string{"low-calorie", "pcos-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "crna čokolada 85%", Quantity: 20, Unit: "g", Calories: 120, Protein: 2, Carbs: 6, Fats: 9},
			{Name: "bademi", Quantity: 8, Unit: "g", Calories: 50, Protein: 2, Carbs: 2, Fats: 4},
		},
		Instructions: []string{
			"Uživaj polako uz čaj.",
		},
	},
	{
		ID:        "x-vocna-salata",
		Title:     "Voćna salata sa cimetom",
		MealType:  models.MealDessert,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed, models.DietTypeOmnivore},
		Calories:  140, Protein: 2, Carbs: 33, Fats: 1,
		Tags: []string{"low-calorie"},
		Ingredients: []models.Ingredient{
			{Name: "jabuka", Quantity: 100, Unit: "g", Calories: 55, Protein: 0, Carbs: 14, Fats: 0},
			{Name: "pomorandža", Quantity: 100, Unit: "g", Calories: 45, Protein: 1, Carbs: 11, Fats: 0},
			{Name: "kivi", Quantity: 70, Unit: "g", Calories: 40, Protein: 1, Carbs: 8, Fats: 0},
		},
		Instructions: []string{
			"Iseckaj voće i pospi cimetom.",
		},
	},
	{
		ID:        "x-protein-puding",
		Title:     "Proteinski puding od kakaa",
		MealType:  models.MealDessert,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed},
		Calories:  200, Protein: 22, Carbs: 16, Fats: 5,
		Tags: []string{"mid-calorie", "high-protein", "ir-friendly"},
		Ingredients: []models.Ingredient{
			{Name: "protein surutke", Quantity: 25, Unit: "g", Calories: 95, Protein: 20, Carbs: 2, Fats: 1},
			{Name: "grčki jogurt", Quantity: 100, Unit: "g", Calories: 90, Protein: 10, Carbs: 4, Fats: 4},
			{Name: "kakao", Quantity: 8, Unit: "g", Calories: 20, Protein: 2, Carbs: 2, Fats: 1},
		},
		Instructions: []string{
			"Umešaj protein i kakao u jogurt do glatke teksture.",
		},
	},
	{
		ID:        "x-cizkejk-casa",
		Title:     "Čizkejk u čaši sa malinama",
		MealType:  models.MealDessert,
		DietTypes: []models.DietType{models.DietTypeVegetarian, models.DietTypeMixed, models.DietTypeOmnivore},
		Calories:  290, Protein: 9, Carbs: 28, Fats: 16,
		Tags: []string{"high-calorie"},
		Ingredients: []models.Ingredient{
			{Name: "krem sir", Quantity: 60, Unit: "g", Calories: 165, Protein: 3, Carbs: 3, Fats: 15},
			{Name: "keks", Quantity: 20, Unit: "g", Calories: 90, Protein: 1, Carbs: 15, Fats: 3},
			{Name: "maline", Quantity: 60, Unit: "g", Calories: 40, Protein: 1, Carbs: 5, Fats: 0},
		},
		Instructions: []string{
			"Složi slojeve keksa, sira i malina u čašu.",
			"Ohladi 30 minuta pre služenja.",
		},
	},
}
