// Package lang defines the supported language labels and tracks how often
// each language is used across rounds.
package lang

// Lang is a programming language label as reported by the judge platform.
// Labels outside the known set are still carried through for display but are
// never matched by presets or bonuses.
type Lang string

// Known language labels.
const (
	Bash       Lang = "Bash"
	C          Lang = "C"
	CSharp     Lang = "C#"
	CPlusPlus  Lang = "C++"
	Clojure    Lang = "Clojure"
	D          Lang = "D"
	Dart       Lang = "Dart"
	FSharp     Lang = "F#"
	Go         Lang = "Go"
	Groovy     Lang = "Groovy"
	Haskell    Lang = "Haskell"
	Java       Lang = "Java"
	JavaScript Lang = "JavaScript"
	Kotlin     Lang = "Kotlin"
	Lua        Lang = "Lua"
	OCaml      Lang = "OCaml"
	Pascal     Lang = "Pascal"
	Perl       Lang = "Perl"
	PHP        Lang = "PHP"
	Python3    Lang = "Python 3"
	Ruby       Lang = "Ruby"
	Rust       Lang = "Rust"
	Scala      Lang = "Scala"
	Swift      Lang = "Swift"
	TypeScript Lang = "TypeScript"
	VBNet      Lang = "VB.NET"
)

// All lists every known language label.
var All = []Lang{
	Bash, C, CSharp, CPlusPlus, Clojure, D, Dart, FSharp, Go, Groovy,
	Haskell, Java, JavaScript, Kotlin, Lua, OCaml, Pascal, Perl, PHP,
	Python3, Ruby, Rust, Scala, Swift, TypeScript, VBNet,
}

var known = func() map[Lang]struct{} {
	m := make(map[Lang]struct{}, len(All))
	for _, l := range All {
		m[l] = struct{}{}
	}
	return m
}()

// Known reports whether l is part of the supported enumeration.
func Known(l Lang) bool {
	_, ok := known[l]
	return ok
}

// Short display labels for languages whose full name is too wide for the
// scoreboard.
var shortNames = map[Lang]string{
	Python3:    "Python",
	JavaScript: "JS",
}

// Format returns the display label for l, falling back to the label itself.
func Format(l Lang) string {
	if s, ok := shortNames[l]; ok {
		return s
	}
	return string(l)
}
