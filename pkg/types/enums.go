package types

// Category is a recipe category drawn from a fixed, closed label set.
type Category string

// Recipe categories.
const (
	CategoryStaple    Category = "主食"
	CategoryMain      Category = "主菜"
	CategorySide      Category = "副菜"
	CategorySoup      Category = "スープ"
	CategorySalad     Category = "サラダ"
	CategoryDessert   Category = "デザート"
	CategoryDrink     Category = "飲み物"
	CategoryJapanese  Category = "和食"
	CategoryWestern   Category = "洋食"
	CategoryChinese   Category = "中華"
	CategoryItalian   Category = "イタリアン"
	CategoryOther     Category = "その他"

	// CategoryAll is the filter wildcard, never stored on a recipe.
	CategoryAll Category = "all"
)

// Categories lists every storable category in display order.
var Categories = []Category{
	CategoryStaple, CategoryMain, CategorySide, CategorySoup,
	CategorySalad, CategoryDessert, CategoryDrink, CategoryJapanese,
	CategoryWestern, CategoryChinese, CategoryItalian, CategoryOther,
}

// validCategories is the set of storable category values.
var validCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidCategory reports whether c is a storable category label.
func ValidCategory(c Category) bool { return validCategories[c] }

// Unit is a measurement unit drawn from a fixed, closed set.
type Unit string

// Measurement units.
const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitCC         Unit = "cc"
	UnitPiece      Unit = "個"
	UnitStick      Unit = "本"
	UnitSheet      Unit = "枚"
	UnitSlice      Unit = "切れ"
	UnitTablespoon Unit = "大さじ"
	UnitTeaspoon   Unit = "小さじ"
	UnitCup        Unit = "カップ"
	UnitPinch      Unit = "少々"
	UnitDash       Unit = "ひとつまみ"
	UnitToTaste    Unit = "適量"
)

// Units lists every measurement unit in display order.
var Units = []Unit{
	UnitGram, UnitKilogram, UnitMilliliter, UnitLiter, UnitCC,
	UnitPiece, UnitStick, UnitSheet, UnitSlice,
	UnitTablespoon, UnitTeaspoon, UnitCup,
	UnitPinch, UnitDash, UnitToTaste,
}

// validUnits is the set of recognized unit values.
var validUnits = func() map[Unit]bool {
	m := make(map[Unit]bool, len(Units))
	for _, u := range Units {
		m[u] = true
	}
	return m
}()

// ValidUnit reports whether u is a recognized measurement unit.
func ValidUnit(u Unit) bool { return validUnits[u] }

// Difficulty bounds (1 = easiest, 5 = hardest).
const (
	DifficultyMin = 1
	DifficultyMax = 5
)
