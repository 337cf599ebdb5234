package versioning

import (
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	committed := time.Date(2024, time.March, 9, 17, 4, 5, 0, time.UTC)
	for name, test := range map[string]struct {
		mainVersion string
		revision    string
		dirty       bool
		want        string
	}{
		"release":      {mainVersion: "v1.2.0", revision: "0123456789abcdef", want: "v1.2.0"},
		"dirty":        {mainVersion: "v1.2.0", dirty: true, want: "v1.2.0+dirty"},
		"devel":        {mainVersion: "(devel)", revision: "0123456789abcdef", want: "v0.0.0-20240309170405-0123456789ab"},
		"short hash":   {mainVersion: "(devel)", revision: "abc", dirty: true, want: "v0.0.0-20240309170405-abc+dirty"},
		"nothing":      {mainVersion: "(devel)", revision: "unknown", want: fallbackVersion},
		"no buildinfo": {want: fallbackVersion},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := describe(test.mainVersion, test.revision, committed, test.dirty); got != test.want {
				t.Errorf("describe() = %q, want %q", got, test.want)
			}
		})
	}
	if got := DetermineToolVersion("v9.9.9"); got != "v9.9.9" {
		t.Errorf("DetermineToolVersion() = %q, want the override", got)
	}
}
