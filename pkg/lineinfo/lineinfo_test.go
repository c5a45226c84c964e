package lineinfo

import "testing"

func TestClassifyBuiltins(t *testing.T) {
	tbl := New()

	cases := []struct {
		line string
		want Type
	}{
		{"diff --git a/x b/x", LineDiffHeader},
		{"@@ -1,3 +1,4 @@", LineDiffChunk},
		{"+added line", LineDiffAdd},
		{"-removed line", LineDiffDel},
		{"commit deadbeef", LineCommit},
		{"author Jane Doe", LineAuthor},
		{"nothing special here", LineDefault},
	}
	for _, tc := range cases {
		got := tbl.Classify(tc.line)
		if got.Type != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.line, got.Type, tc.want)
		}
	}
}

func TestCustomColorTakesPriorityOverBuiltin(t *testing.T) {
	tbl := New()
	tbl.AddCustom("commit ", -1, -1, 0)

	got := tbl.Classify("commit deadbeef")
	if got.Type != LineDefault {
		t.Fatalf("expected the custom entry (Type LineDefault) to win, got %v", got.Type)
	}
	if got.Name != "commit " {
		t.Fatalf("expected custom entry to be matched, got %+v", got)
	}
}

func TestByNameRecolorsBuiltinInPlace(t *testing.T) {
	tbl := New()
	info, ok := tbl.ByName("author")
	if !ok {
		t.Fatalf("expected built-in 'author' entry")
	}
	info.FG = 42

	reclassified := tbl.Classify("author Jane Doe")
	if reclassified.FG != 42 {
		t.Fatalf("recoloring via ByName should affect subsequent Classify, got FG=%d", reclassified.FG)
	}
}

func TestByNameUnknown(t *testing.T) {
	tbl := New()
	if _, ok := tbl.ByName("no-such-entry"); ok {
		t.Fatalf("expected lookup miss for unregistered name")
	}
}

func TestDowngradeCombinedOnly(t *testing.T) {
	if DowngradeCombinedOnly(LineDiffAdd2, false) != LineDefault {
		t.Fatalf("expected ADD2 to downgrade to default outside combined diff")
	}
	if DowngradeCombinedOnly(LineDiffAdd2, true) != LineDiffAdd2 {
		t.Fatalf("expected ADD2 to survive inside combined diff")
	}
	if DowngradeCombinedOnly(LineDiffAdd, false) != LineDiffAdd {
		t.Fatalf("non-combined-only types must pass through unchanged")
	}
}
