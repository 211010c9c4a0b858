package data

import (
	"github.com/CiraLoC/Fitkofer-Srpski-20.10/models"
)

// HomeExercises is the catalog for users training at home with minimal
// equipment.
var HomeExercises = []models.WorkoutExercise{
	{
		ID:           "h-pushup",
		Name:         "Sklekovi",
		Equipment:    "telesna težina",
		Focus:        models.FocusPush,
		Instructions: "Dlanovi u širini ramena, telo u ravnoj liniji, spusti se kontrolisano do poda.",
		Sets:         3,
		RepRange:     "8-12",
	},
	{
		ID:           "h-kneeling-pushup",
		Name:         "Sklekovi na kolenima",
		Equipment:    "telesna težina",
		Focus:        models.FocusPush,
		Instructions: "Varijanta skleka sa kolenima na podu, fokus na punom opsegu pokreta.",
		Sets:         3,
		RepRange:     "10-15",
		Intensity:    models.IntensityBeginner,
	},
	{
		ID:           "h-band-row",
		Name:         "Veslanje sa trakom",
		Equipment:    "elastična traka",
		Focus:        models.FocusPull,
		Instructions: "Traku fiksiraj u visini grudi, povlači laktove uz telo, stisni lopatice.",
		Sets:         3,
		RepRange:     "12-15",
	},
	{
		ID:           "h-doorway-row",
		Name:         "Veslanje na dovratku",
		Equipment:    "telesna težina",
		Focus:        models.FocusPull,
		Instructions: "Uhvati dovratak, nagni se unazad i privuci grudi ka šakama.",
		Sets:         3,
		RepRange:     "10-12",
	},
	{
		ID:           "h-pike-press",
		Name:         "Pike potisak",
		Equipment:    "telesna težina",
		Focus:        models.FocusUpper,
		Instructions: "Iz pozicije obrnutog V spuštaj teme ka podu, lakat prati liniju šake.",
		Sets:         3,
		RepRange:     "6-10",
		Intensity:    models.IntensityIntermediate,
	},
	{
		ID:           "h-band-press",
		Name:         "Potisak trake iznad glave",
		Equipment:    "elastična traka",
		Focus:        models.FocusUpper,
		Instructions: "Stani na traku, potisni ručke iznad glave bez izvijanja u krstima.",
		Sets:         3,
		RepRange:     "10-12",
	},
	{
		ID:           "h-band-curl",
		Name:         "Biceps pregib sa trakom",
		Equipment:    "elastična traka",
		Focus:        models.FocusUpper,
		Instructions: "Laktovi uz telo, pregib bez zamaha, spora negativna faza.",
		Sets:         3,
		RepRange:     "12-15",
		GoalTags:     []models.Goal{models.GoalGain, models.GoalMaintain},
	},
	{
		ID:           "h-squat",
		Name:         "Čučanj",
		Equipment:    "telesna težina",
		Focus:        models.FocusLower,
		Instructions: "Stopala u širini kukova, spusti se do paralele, pete ostaju na podu.",
		Sets:         4,
		RepRange:     "12-15",
	},
	{
		ID:           "h-split-squat",
		Name:         "Bugarski iskorak",
		Equipment:    "stolica",
		Focus:        models.FocusLower,
		Instructions: "Zadnja noga na stolici, prednje koleno prati liniju stopala.",
		Sets:         3,
		RepRange:     "8-10",
		Intensity:    models.IntensityIntermediate,
	},
	{
		ID:           "h-glute-bridge",
		Name:         "Glute most",
		Equipment:    "telesna težina",
		Focus:        models.FocusLower,
		Instructions: "Lezi na leđa, potisni kukove naviše, stisni zadnjicu u gornjoj tački.",
		Sets:         3,
		RepRange:     "15-20",
		HealthTags:   []models.HealthCondition{models.ConditionPCOS},
	},
	{
		ID:           "h-hip-hinge",
		Name:         "Rumunsko mrtvo dizanje sa trakom",
		Equipment:    "elastična traka",
		Focus:        models.FocusLower,
		Instructions: "Pretklon iz kukova sa ravnim leđima, oseti istezanje zadnje lože.",
		Sets:         3,
		RepRange:     "10-12",
	},
	{
		ID:           "h-burpee",
		Name:         "Burpee",
		Equipment:    "telesna težina",
		Focus:        models.FocusFull,
		Instructions: "Čučanj, sklek, skok — kontinuiran tempo bez gubljenja forme.",
		Sets:         3,
		RepRange:     "8-10",
		Intensity:    models.IntensityAdvanced,
		GoalTags:     []models.Goal{models.GoalLose},
	},
	{
		ID:           "h-squat-to-press",
		Name:         "Čučanj sa potiskom",
		Equipment:    "bučice ili flaše",
		Focus:        models.FocusFull,
		Instructions: "Iz čučnja potisni tegove iznad glave u jednom pokretu.",
		Sets:         3,
		RepRange:     "10-12",
	},
	{
		ID:           "h-plank",
		Name:         "Plank",
		Equipment:    "telesna težina",
		Focus:        models.FocusCore,
		Instructions: "Laktovi pod ramenima, stisni zadnjicu i trbuh, drži liniju.",
		Sets:         3,
		RepRange:     "30-45 s",
	},
	{
		ID:           "h-dead-bug",
		Name:         "Dead bug",
		Equipment:    "telesna težina",
		Focus:        models.FocusCore,
		Instructions: "Leđa priljubljena uz pod, suprotna ruka i noga se spuštaju sporo.",
		Sets:         3,
		RepRange:     "10 po strani",
	},
	{
		ID:           "h-side-plank",
		Name:         "Bočni plank",
		Equipment:    "telesna težina",
		Focus:        models.FocusCore,
		Instructions: "Lakat pod ramenom, kukovi visoko, drži bez uvijanja.",
		Sets:         2,
		RepRange:     "20-30 s po strani",
	},
	{
		ID:           "h-cat-cow",
		Name:         "Mačka-krava",
		Equipment:    "telesna težina",
		Focus:        models.FocusMobility,
		Instructions: "Naizmenično zaobli i izvij kičmu u ritmu disanja.",
		Sets:         2,
		RepRange:     "10",
	},
	{
		ID:           "h-hip-opener",
		Name:         "90/90 otvaranje kukova",
		Equipment:    "telesna težina",
		Focus:        models.FocusMobility,
		Instructions: "Sedi u 90/90 poziciju, rotiraj kolena sa jedne na drugu stranu.",
		Sets:         2,
		RepRange:     "8 po strani",
	},
	{
		ID:           "h-jump-rope",
		Name:         "Vijača",
		Equipment:    "vijača",
		Focus:        models.FocusCardio,
		Instructions: "Lagani skokovi na prednjem delu stopala, ručni zglobovi rade.",
		Sets:         4,
		RepRange:     "45 s",
		GoalTags:     []models.Goal{models.GoalLose},
	},
}

// GymExercises is the catalog for users training in a gym.
var GymExercises = []models.WorkoutExercise{
	{
		ID:           "g-bench-press",
		Name:         "Bench potisak",
		Equipment:    "šipka",
		Focus:        models.FocusPush,
		Instructions: "Lopatice stisnute, šipka do grudi, potisak bez odbijanja.",
		Sets:         4,
		RepRange:     "6-10",
	},
	{
		ID:           "g-db-shoulder-press",
		Name:         "Rameni potisak bučicama",
		Equipment:    "bučice",
		Focus:        models.FocusPush,
		Instructions: "Potisak iz visine ušiju, laktovi blago ispred tela.",
		Sets:         3,
		RepRange:     "8-12",
	},
	{
		ID:           "g-lat-pulldown",
		Name:         "Lat povlačenje",
		Equipment:    "lat mašina",
		Focus:        models.FocusPull,
		Instructions: "Povuci šipku ka ključnoj kosti, laktovi idu ka podu.",
		Sets:         4,
		RepRange:     "8-12",
	},
	{
		ID:           "g-seated-row",
		Name:         "Veslanje u sedu",
		Equipment:    "kabl mašina",
		Focus:        models.FocusPull,
		Instructions: "Ispravljena leđa, povuci ručku ka pupku, stisni lopatice.",
		Sets:         3,
		RepRange:     "10-12",
	},
	{
		ID:           "g-incline-db-press",
		Name:         "Kosi potisak bučicama",
		Equipment:    "bučice",
		Focus:        models.FocusUpper,
		Instructions: "Klupa na 30°, bučice se spuštaju do spoljne ivice grudi.",
		Sets:         3,
		RepRange:     "8-12",
		Intensity:    models.IntensityIntermediate,
	},
	{
		ID:           "g-lateral-raise",
		Name:         "Odručenje bučicama",
		Equipment:    "bučice",
		Focus:        models.FocusUpper,
		Instructions: "Laktovi blago savijeni, podigni do visine ramena bez zamaha.",
		Sets:         3,
		RepRange:     "12-15",
		GoalTags:     []models.Goal{models.GoalGain, models.GoalMaintain},
	},
	{
		ID:           "g-back-squat",
		Name:         "Čučanj sa šipkom",
		Equipment:    "šipka",
		Focus:        models.FocusLower,
		Instructions: "Šipka na trapezima, spusti se do paralele, kolena prate stopala.",
		Sets:         4,
		RepRange:     "6-10",
		Intensity:    models.IntensityIntermediate,
	},
	{
		ID:           "g-leg-press",
		Name:         "Nožna presa",
		Equipment:    "presa",
		Focus:        models.FocusLower,
		Instructions: "Stopala u širini kukova, spusti do 90°, ne zaključavaj kolena.",
		Sets:         3,
		RepRange:     "10-12",
	},
	{
		ID:           "g-rdl",
		Name:         "Rumunsko mrtvo dizanje",
		Equipment:    "šipka",
		Focus:        models.FocusLower,
		Instructions: "Šipka klizi uz butine, ravna leđa, kukovi idu nazad.",
		Sets:         3,
		RepRange:     "8-10",
		Intensity:    models.IntensityAdvanced,
	},
	{
		ID:           "g-hip-thrust",
		Name:         "Hip thrust",
		Equipment:    "šipka",
		Focus:        models.FocusLower,
		Instructions: "Gornji deo leđa na klupi, potisni kukove do pune ekstenzije.",
		Sets:         4,
		RepRange:     "10-12",
		HealthTags:   []models.HealthCondition{models.ConditionPCOS, models.ConditionIR},
	},
	{
		ID:           "g-goblet-squat",
		Name:         "Goblet čučanj",
		Equipment:    "girja",
		Focus:        models.FocusFull,
		Instructions: "Girja uz grudi, dubok čučanj sa uspravnim trupom.",
		Sets:         3,
		RepRange:     "10-12",
	},
	{
		ID:           "g-kb-swing",
		Name:         "Zamah girjom",
		Equipment:    "girja",
		Focus:        models.FocusFull,
		Instructions: "Eksplozivni pokret iz kukova, ruke samo prate girju.",
		Sets:         4,
		RepRange:     "15",
		GoalTags:     []models.Goal{models.GoalLose},
	},
	{
		ID:           "g-cable-crunch",
		Name:         "Trbušnjaci na kablu",
		Equipment:    "kabl mašina",
		Focus:        models.FocusCore,
		Instructions: "Kleči ispred kabla, savijaj trup ka podu iz trbuha.",
		Sets:         3,
		RepRange:     "12-15",
	},
	{
		ID:           "g-hanging-knee-raise",
		Name:         "Podizanje kolena u visu",
		Equipment:    "vratilo",
		Focus:        models.FocusCore,
		Instructions: "Iz visa podigni kolena ka grudima bez ljuljanja.",
		Sets:         3,
		RepRange:     "8-12",
		Intensity:    models.IntensityIntermediate,
	},
	{
		ID:           "g-pallof-press",
		Name:         "Pallof potisak",
		Equipment:    "kabl mašina",
		Focus:        models.FocusCore,
		Instructions: "Bočno u odnosu na kabl, potisni ručku ispred grudi i drži.",
		Sets:         3,
		RepRange:     "10 po strani",
	},
	{
		ID:           "g-treadmill-incline",
		Name:         "Hodanje na nagibu",
		Equipment:    "traka za trčanje",
		Focus:        models.FocusCardio,
		Instructions: "Nagib 8-12%, brzina hoda, bez držanja za rukohvate.",
		Sets:         1,
		RepRange:     "15-20 min",
		GoalTags:     []models.Goal{models.GoalLose},
	},
	{
		ID:           "g-foam-roll",
		Name:         "Foam roller krug",
		Equipment:    "roler",
		Focus:        models.FocusMobility,
		Instructions: "Prevrni ledja, zadnju ložu i listove, 30 sekundi po regiji.",
		Sets:         1,
		RepRange:     "5 min",
	},
	{
		ID:           "g-world-greatest",
		Name:         "Najveće istezanje sveta",
		Equipment:    "telesna težina",
		Focus:        models.FocusMobility,
		Instructions: "Dubok iskorak sa rotacijom trupa ka prednjoj nozi.",
		Sets:         2,
		RepRange:     "5 po strani",
	},
}
