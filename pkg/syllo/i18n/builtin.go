package i18n

import "github.com/cognicore/syllo/pkg/syllo/logic"

// Default returns the built-in bundle: English as the default language
// plus a German table. Deployments with their own translations load a
// bundle through the config package instead.
func Default() *Bundle {
	bundle, err := NewBundle("en", map[string]Table{
		"en": {
			Patterns: map[logic.Kind]string{
				logic.All:     "All {subject} are {object}.",
				logic.None:    "No {subject} are {object}.",
				logic.Some:    "Some {subject} are {object}.",
				logic.SomeNot: "Some {subject} are not {object}.",
				logic.Unknown: "Nothing certain follows about {subject} and {object}.",
			},
			Vocabulary: []string{
				"painters", "musicians", "gardeners",
				"sailors", "architects", "beekeepers",
			},
		},
		"de": {
			Patterns: map[logic.Kind]string{
				logic.All:     "Alle {subject} sind {object}.",
				logic.None:    "Keine {subject} sind {object}.",
				logic.Some:    "Einige {subject} sind {object}.",
				logic.SomeNot: "Einige {subject} sind keine {object}.",
				logic.Unknown: "Über {subject} und {object} folgt nichts Sicheres.",
			},
			Vocabulary: []string{
				"Maler", "Musiker", "Gärtner",
				"Segler", "Architekten", "Imker",
			},
		},
	})
	if err != nil {
		panic("i18n: builtin bundle: " + err.Error())
	}
	return bundle
}
