// Package preset holds the named bonus bundles organizers can attach to a
// round. Each bundle grants one flat bonus to a fixed set of languages.
package preset

import "github.com/prachya/golfparty/internal/domain/lang"

// Bonus is a named, immutable bundle of languages sharing one flat bonus.
type Bonus struct {
	Name      string
	Langs     []lang.Lang
	FlatBonus float64
}

// The preset table. BuffTheOp replaced an older ScriptKiddie preset.
var (
	FlavorsOfC = Bonus{
		Name:      "FlavorsOfC",
		Langs:     []lang.Lang{lang.C, lang.CSharp, lang.CPlusPlus},
		FlatBonus: 10,
	}

	IMakeAppsBtw = Bonus{
		Name:      "IMakeAppsBtw",
		Langs:     []lang.Lang{lang.Kotlin, lang.Swift, lang.Dart},
		FlatBonus: 5,
	}

	RealProgrammer = Bonus{
		Name:      "RealProgrammer",
		Langs:     []lang.Lang{lang.Rust, lang.Pascal, lang.Haskell},
		FlatBonus: 20,
	}

	BuffTheOp = Bonus{
		Name:      "BuffTheOp",
		Langs:     []lang.Lang{lang.Python3, lang.Bash, lang.Ruby},
		FlatBonus: 5,
	}

	OOPSucks = Bonus{
		Name:      "OOPSucks",
		Langs:     []lang.Lang{lang.Groovy, lang.Java, lang.Go},
		FlatBonus: 10,
	}

	IMakeWebBtw = Bonus{
		Name:      "IMakeWebBtw",
		Langs:     []lang.Lang{lang.Perl, lang.PHP, lang.JavaScript},
		FlatBonus: 5,
	}

	KraTikNamMicrosoft = Bonus{
		Name:      "KraTikNamMicrosoft",
		Langs:     []lang.Lang{lang.CSharp, lang.TypeScript, lang.FSharp, lang.VBNet},
		FlatBonus: 10,
	}
)

var registry = map[string]Bonus{
	FlavorsOfC.Name:         FlavorsOfC,
	IMakeAppsBtw.Name:       IMakeAppsBtw,
	RealProgrammer.Name:     RealProgrammer,
	BuffTheOp.Name:          BuffTheOp,
	OOPSucks.Name:           OOPSucks,
	IMakeWebBtw.Name:        IMakeWebBtw,
	KraTikNamMicrosoft.Name: KraTikNamMicrosoft,
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Bonus, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names lists every registered preset name.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
