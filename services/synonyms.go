package services

import "strings"

// Exercise names arrive in mixed Portuguese/English with inconsistent
// spelling. The vocabulary is small and precision matters more than
// recall, so matching is done against a curated table instead of a
// string-distance metric.
//
// The table is hand-authored and not guaranteed to list every relation
// in both directions; AreSynonyms consults both directions.
var exerciseSynonyms = map[string][]string{
	"supino":              {"bench press", "supino reto", "flat bench press"},
	"supino inclinado":    {"incline bench press", "incline press"},
	"supino declinado":    {"decline bench press", "decline press"},
	"crucifixo":           {"chest fly", "dumbbell fly", "fly"},
	"agachamento":         {"squat", "back squat", "agachamento livre"},
	"agachamento frontal": {"front squat"},
	"leg press":           {"leg press 45", "prensa de pernas"},
	"levantamento terra":  {"deadlift", "terra"},
	"stiff":               {"romanian deadlift", "rdl", "stiff leg deadlift"},
	"afundo":              {"lunge", "avanço", "passada"},
	"cadeira extensora":   {"leg extension", "extensora"},
	"mesa flexora":        {"leg curl", "flexora", "lying leg curl"},
	"panturrilha em pe":   {"standing calf raise", "calf raise"},
	"remada curvada":      {"bent over row", "barbell row", "remada"},
	"remada baixa":        {"seated cable row", "cable row"},
	"puxada frontal":      {"lat pulldown", "pulldown", "puxada alta"},
	"barra fixa":          {"pull up", "pull-up", "chin up"},
	"desenvolvimento":     {"overhead press", "shoulder press", "military press"},
	"elevacao lateral":    {"lateral raise", "side raise"},
	"elevacao frontal":    {"front raise"},
	"encolhimento":        {"shrug", "barbell shrug"},
	"rosca direta":        {"barbell curl", "biceps curl", "rosca"},
	"rosca alternada":     {"alternating dumbbell curl", "dumbbell curl"},
	"rosca martelo":       {"hammer curl"},
	"triceps testa":       {"skull crusher", "lying triceps extension"},
	"triceps corda":       {"rope pushdown", "triceps pushdown", "triceps pulley"},
	"mergulho":            {"dip", "dips", "paralelas"},
	"flexao":              {"push up", "push-up", "flexao de braco"},
	"abdominal":           {"crunch", "sit up", "sit-up"},
	"prancha":             {"plank"},
	"elevacao pelvica":    {"hip thrust", "glute bridge"},
	"esteira":             {"treadmill", "corrida"},
	"bicicleta":           {"stationary bike", "cycling", "spinning"},
	"burpee":              {"burpees"},
	"polichinelo":         {"jumping jack", "jumping jacks"},
}

// muscleGroupTags maps localized spellings to one canonical tag. Unknown
// terms fall through unchanged (open world), so new groups coming from
// the exercise library still flow through aggregation untouched.
var muscleGroupTags = map[string]string{
	"peito":         "chest",
	"peitoral":      "chest",
	"chest":         "chest",
	"costas":        "back",
	"dorsal":        "back",
	"dorsais":       "back",
	"back":          "back",
	"lats":          "back",
	"pernas":        "legs",
	"perna":         "legs",
	"quadriceps":    "legs",
	"quadríceps":    "legs",
	"posterior":     "legs",
	"legs":          "legs",
	"hamstrings":    "legs",
	"ombro":         "shoulders",
	"ombros":        "shoulders",
	"deltoide":      "shoulders",
	"deltoides":     "shoulders",
	"shoulders":     "shoulders",
	"delts":         "shoulders",
	"biceps":        "biceps",
	"bíceps":        "biceps",
	"triceps":       "triceps",
	"tríceps":       "triceps",
	"bracos":        "arms",
	"braços":        "arms",
	"arms":          "arms",
	"abdomen":       "core",
	"abdômen":       "core",
	"abdominal":     "core",
	"abs":           "core",
	"core":          "core",
	"gluteo":        "glutes",
	"gluteos":       "glutes",
	"glúteos":       "glutes",
	"glutes":        "glutes",
	"panturrilha":   "calves",
	"panturrilhas":  "calves",
	"calves":        "calves",
	"antebraco":     "forearms",
	"antebraço":     "forearms",
	"forearms":      "forearms",
	"corpo inteiro": "fullbody",
	"full body":     "fullbody",
	"fullbody":      "fullbody",
	"cardio":        "cardio",
	"aerobico":      "cardio",
	"aeróbico":      "cardio",
	"trapezio":      "back",
	"trapézio":      "back",
	"lombar":        "back",
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// GetSynonyms returns the known aliases for a term. Unknown terms yield
// an empty slice, never an error.
func GetSynonyms(term string) []string {
	syns, ok := exerciseSynonyms[normalizeTerm(term)]
	if !ok {
		return []string{}
	}
	return syns
}

// AreSynonyms reports whether two free-text names refer to the same
// exercise. The check is symmetric even when the table only lists the
// relation in one direction.
func AreSynonyms(a, b string) bool {
	na, nb := normalizeTerm(a), normalizeTerm(b)
	if na == nb {
		return true
	}
	for _, s := range exerciseSynonyms[na] {
		if normalizeTerm(s) == nb {
			return true
		}
	}
	for _, s := range exerciseSynonyms[nb] {
		if normalizeTerm(s) == na {
			return true
		}
	}
	return false
}

// NormalizeMuscleGroup resolves a localized muscle-group spelling to its
// canonical tag. Unmapped input is returned lowercased/trimmed.
func NormalizeMuscleGroup(term string) string {
	n := normalizeTerm(term)
	if tag, ok := muscleGroupTags[n]; ok {
		return tag
	}
	return n
}
