package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortByName(t *testing.T) {
	techs := []Technology{
		{Name: "Zebra", SourcePath: "z.md"},
		{Name: "apple", SourcePath: "a.md"},
		{Name: "Mango", SourcePath: "m.md"},
		{Name: "Apple", SourcePath: "b.md"},
		{Name: "apple", SourcePath: "0.md"},
	}
	SortByName(techs)

	var got []string
	for _, tc := range techs {
		got = append(got, tc.Name+"@"+tc.SourcePath)
	}
	want := []string{"Apple@b.md", "apple@0.md", "apple@a.md", "Mango@m.md", "Zebra@z.md"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}
