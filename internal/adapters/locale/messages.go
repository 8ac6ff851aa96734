package locale

import "golang.org/x/text/language"

// Message keys double as the English text. Numbers reach the printer
// already formatted, so every argument is a %s.
const (
	keyBase      = "%s (freshness: %s%%, stem length: %s cm, price: %s UAH)"
	keyRose      = "Rose %s - %s"
	keyTulip     = "Tulip (%s) - %s"
	keyDaisy     = "Daisy (petals: %s) - %s"
	keyBouquet   = "Bouquet:"
	keyTotal     = "Total price: %s UAH"
	keyUnsorted  = "Before sorting by freshness:"
	keySorted    = "After sorting by freshness:"
	keyMinPrompt = "Enter minimum stem length: "
	keyMaxPrompt = "Enter maximum stem length: "
	keyRange     = "Flowers with stem length in range %s-%s cm:"
	keyFailure   = "An error occurred: %s"
)

// translations holds every non-English message table, keyed by the English text.
// Error messages are keyed by the message of the domain error they translate.
var translations = map[language.Tag]map[string]string{
	language.Ukrainian: {
		keyBase:      "%s (свіжість: %s%%, довжина стебла: %s см, ціна: %s грн)",
		keyRose:      "Троянда %s - %s",
		keyTulip:     "Тюльпан (%s) - %s",
		keyDaisy:     "Ромашка (пелюсток: %s) - %s",
		keyBouquet:   "Букет:",
		keyTotal:     "Загальна вартість: %s грн",
		keyUnsorted:  "До сортування за свіжістю:",
		keySorted:    "Після сортування за свіжістю:",
		keyMinPrompt: "Введіть мінімальну довжину стебла: ",
		keyMaxPrompt: "Введіть максимальну довжину стебла: ",
		keyRange:     "Квіти з довжиною стебла в діапазоні %s-%s см:",
		keyFailure:   "Сталася помилка: %s",

		"freshness must be within 0-100":              "Рівень свіжості має бути в діапазоні 0-100.",
		"stem length must be positive":                "Довжина стебла має бути додатнім значенням.",
		"price must be positive":                      "Ціна має бути додатнім значенням.",
		"accessory price must be positive":            "Ціна аксесуара має бути додатною.",
		"minimum length cannot exceed maximum length": "Мінімальна довжина не може бути більшою за максимальну.",
		"input is not an integer":                     "Введене значення не є цілим числом.",
		"input ended before a value was read":         "Введення закінчилося раніше, ніж було прочитано значення.",
	},
}
