package floorplan

// defaultObjectLabel - подпись для неизвестных категорий мебели
const defaultObjectLabel = "Object"

// categoryLabels - отображаемые подписи категорий мебели из RoomPlan
var categoryLabels = map[string]string{
	"bathtub":      "Bathtub",
	"bed":          "Bed",
	"chair":        "Chair",
	"dishwasher":   "Dishwasher",
	"fireplace":    "Fireplace",
	"oven":         "Oven",
	"refrigerator": "Refrigerator",
	"sink":         "Sink",
	"sofa":         "Sofa",
	"stairs":       "Stairs",
	"storage":      "Storage",
	"stove":        "Stove",
	"table":        "Table",
	"television":   "TV",
	"toilet":       "Toilet",
	"washerDryer":  "Washer/Dryer",
}

// LabelForCategory возвращает подпись категории мебели.
// Неизвестные и будущие категории получают обобщённую подпись "Object" -
// функция никогда не падает и не возвращает пустую строку.
func LabelForCategory(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return defaultObjectLabel
}
