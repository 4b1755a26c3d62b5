package db

import (
	"strconv"
	"strings"
)

// MaxSlots is the number of ingredient/measure positions on a drink record
const MaxSlots = 15

// Record is one raw drink object from a bulk source, keyed by the
// idDrink/strX field names of the dump
type Record map[string]any

// Slot is one ingredient position. A slot is present only when Ingredient is non-empty.
type Slot struct {
	Ingredient string
	Measure    string
}

// Present reports whether the slot holds an ingredient
func (s Slot) Present() bool {
	return s.Ingredient != ""
}

// Ingredient is the projected form of a present slot
type Ingredient struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// Recipe is a single cocktail. Empty strings stand for absent fields.
type Recipe struct {
	ID           string
	Name         string
	Category     string
	Glass        string
	Alcoholic    string
	Instructions string
	ImageURL     string
	Tags         string
	IBA          string
	Slots        [MaxSlots]Slot
}

var (
	ingredientKeys [MaxSlots]string
	measureKeys    [MaxSlots]string
)

func init() {
	for i := 0; i < MaxSlots; i++ {
		n := strconv.Itoa(i + 1)
		ingredientKeys[i] = "strIngredient" + n
		measureKeys[i] = "strMeasure" + n
	}
}

// FromRecord builds a Recipe from a raw record.
// Missing, null and non-string fields are treated as absent.
func FromRecord(rec Record) Recipe {
	r := Recipe{
		ID:           rec.str("idDrink"),
		Name:         rec.str("strDrink"),
		Category:     rec.str("strCategory"),
		Glass:        rec.str("strGlass"),
		Alcoholic:    rec.str("strAlcoholic"),
		Instructions: rec.str("strInstructions"),
		ImageURL:     rec.str("strDrinkThumb"),
		Tags:         rec.str("strTags"),
		IBA:          rec.str("strIBA"),
	}
	for i := 0; i < MaxSlots; i++ {
		r.Slots[i] = Slot{
			Ingredient: rec.str(ingredientKeys[i]),
			Measure:    rec.str(measureKeys[i]),
		}
	}
	return r
}

func (rec Record) str(key string) string {
	s, _ := rec[key].(string)
	return s
}

// Ingredients projects the present slots in slot order.
// Measures are trimmed; a whitespace-only measure becomes "".
func (r Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, 0, MaxSlots)
	for _, s := range r.Slots {
		if !s.Present() {
			continue
		}
		out = append(out, Ingredient{
			Ingredient: s.Ingredient,
			Measure:    strings.TrimSpace(s.Measure),
		})
	}
	return out
}

// ProjectIngredients is the function form of Recipe.Ingredients
func ProjectIngredients(r Recipe) []Ingredient {
	return r.Ingredients()
}

// TagList splits the comma separated tags, dropping blanks
func (r Recipe) TagList() []string {
	if r.Tags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(r.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
