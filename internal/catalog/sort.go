package catalog

import (
	"sort"

	"golang.org/x/text/cases"
)

// SortByName sorts techs in place by case-folded name ascending, then by exact
// name, then by source path, so "apple" < "Mango" < "Zebra".
func SortByName(techs []Technology) {
	fold := cases.Fold()
	keys := make(map[string]string, len(techs))
	key := func(s string) string {
		if k, ok := keys[s]; ok {
			return k
		}
		k := fold.String(s)
		keys[s] = k
		return k
	}

	sort.SliceStable(techs, func(i, j int) bool {
		ki, kj := key(techs[i].Name), key(techs[j].Name)
		if ki != kj {
			return ki < kj
		}
		if techs[i].Name != techs[j].Name {
			return techs[i].Name < techs[j].Name
		}
		return techs[i].SourcePath < techs[j].SourcePath
	})
}
